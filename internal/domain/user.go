package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyPasswordHash is returned when a user is persisted without credentials.
var ErrEmptyPasswordHash = errors.New("password hash cannot be empty")

// User represents a registered account. Places owned by the user are
// derived by querying places on owner_id.
type User struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserUpdate carries the user fields a partial update may change.
// Nil fields are left untouched. The admin flag is deliberately absent.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// IsZero reports whether the update changes nothing.
func (u UserUpdate) IsZero() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil && u.Password == nil
}

// NewUser validates and normalizes the supplied fields and returns a user
// with a fresh ID. The password hash is set separately with SetPassword.
func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	var err error
	if firstName, err = ValidateName(firstName, "first_name"); err != nil {
		return nil, err
	}
	if lastName, err = ValidateName(lastName, "last_name"); err != nil {
		return nil, err
	}
	if email, err = ValidateEmail(email); err != nil {
		return nil, err
	}

	ts := now()
	return &User{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		IsAdmin:   isAdmin,
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

// SetPassword hashes plaintext with hasher and stores the result.
func (u *User) SetPassword(plaintext string, hasher PasswordHasher) error {
	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	touch(&u.UpdatedAt)
	return nil
}

// Validate checks that a user loaded or built elsewhere is consistent.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrInvalidID
	}
	if _, err := ValidateName(u.FirstName, "first_name"); err != nil {
		return err
	}
	if _, err := ValidateName(u.LastName, "last_name"); err != nil {
		return err
	}
	if _, err := ValidateEmail(u.Email); err != nil {
		return err
	}
	if u.PasswordHash == "" {
		return ErrEmptyPasswordHash
	}
	return nil
}

// Apply validates every field present in upd and, only if all are valid,
// applies them and refreshes UpdatedAt. A new password is hashed with hasher.
func (u *User) Apply(upd UserUpdate, hasher PasswordHasher) error {
	next := *u
	var err error

	if upd.FirstName != nil {
		if next.FirstName, err = ValidateName(*upd.FirstName, "first_name"); err != nil {
			return err
		}
	}
	if upd.LastName != nil {
		if next.LastName, err = ValidateName(*upd.LastName, "last_name"); err != nil {
			return err
		}
	}
	if upd.Email != nil {
		if next.Email, err = ValidateEmail(*upd.Email); err != nil {
			return err
		}
	}
	if upd.Password != nil {
		if next.PasswordHash, err = hasher.Hash(*upd.Password); err != nil {
			return err
		}
	}

	*u = next
	touch(&u.UpdatedAt)
	return nil
}

// GetID returns the user's ID.
func (u *User) GetID() uuid.UUID { return u.ID }

// Attributes exposes the persisted fields keyed by column name.
func (u *User) Attributes() map[string]any {
	return map[string]any{
		"id":            u.ID,
		"first_name":    u.FirstName,
		"last_name":     u.LastName,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"is_admin":      u.IsAdmin,
		"created_at":    u.CreatedAt,
		"updated_at":    u.UpdatedAt,
	}
}

// Clone returns an independent copy of the user.
func (u *User) Clone() *User {
	c := *u
	return &c
}
