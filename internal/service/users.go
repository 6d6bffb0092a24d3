package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/redact"
	"github.com/phrazzld/hbnb-api/internal/service/auth"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// CreateUser registers a user. The email must not belong to anyone else,
// compared case-insensitively.
func (f *FacadeImpl) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password", ErrMissingField)
	}

	user, err := domain.NewUser(in.FirstName, in.LastName, in.Email, in.IsAdmin)
	if err != nil {
		return nil, err
	}
	if err := user.SetPassword(in.Password, f.hasher); err != nil {
		return nil, err
	}

	err = f.inTx(ctx, func(ctx context.Context, tx store.Store) error {
		return f.addUser(ctx, tx, user)
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			f.logger.Debug("attempted to create user with existing email",
				"user_id", user.ID)
		} else {
			f.logger.Error("failed to create user",
				redact.Attr("error", err),
				"user_id", user.ID)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	f.logger.Info("user created",
		"user_id", user.ID,
		"is_admin", user.IsAdmin)
	return user, nil
}

func (f *FacadeImpl) addUser(ctx context.Context, tx store.Store, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	if err := f.ensureEmailFree(ctx, tx, user.Email, uuid.Nil); err != nil {
		return err
	}
	if err := tx.Users().Add(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// ensureEmailFree fails with ErrDuplicateEmail when email belongs to a user other than self.
func (f *FacadeImpl) ensureEmailFree(ctx context.Context, tx store.Store, email string, self uuid.UUID) error {
	existing, err := tx.Users().GetByAttribute(ctx, "email", email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != self:
		return ErrDuplicateEmail
	}
	return nil
}

// GetUser returns the user with the given ID or store.ErrUserNotFound.
func (f *FacadeImpl) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return read(ctx, f, func(ctx context.Context, tx store.Store) (*domain.User, error) {
		return tx.Users().Get(ctx, id)
	})
}

// GetUserByEmail looks a user up by email, ignoring case and surrounding space.
func (f *FacadeImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return read(ctx, f, func(ctx context.Context, tx store.Store) (*domain.User, error) {
		return tx.Users().GetByAttribute(ctx, "email", normalized)
	})
}

// GetAllUsers returns every user.
func (f *FacadeImpl) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	return read(ctx, f, func(ctx context.Context, tx store.Store) ([]*domain.User, error) {
		return tx.Users().GetAll(ctx)
	})
}

// UpdateUser applies a partial update. A new email must not belong to
// another user; a new password is re-hashed.
func (f *FacadeImpl) UpdateUser(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (*domain.User, error) {
	user, err := read(ctx, f, func(ctx context.Context, tx store.Store) (*domain.User, error) {
		user, err := tx.Users().Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := user.Apply(upd, f.hasher); err != nil {
			return nil, err
		}
		if upd.Email != nil {
			if err := f.ensureEmailFree(ctx, tx, user.Email, user.ID); err != nil {
				return nil, err
			}
		}
		if err := tx.Users().Update(ctx, user); err != nil {
			if store.IsDuplicateError(err) {
				return nil, ErrDuplicateEmail
			}
			return nil, err
		}
		return user, nil
	})
	if err != nil {
		f.logger.Debug("user update rejected",
			"error", err,
			"user_id", id)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	f.logger.Info("user updated", "user_id", id)
	return user, nil
}

// Authenticate returns the user matching the credentials, or
// auth.ErrInvalidCredentials. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (f *FacadeImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := f.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			f.logger.Debug("login for unknown email")
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}
	if !f.hasher.Verify(password, user.PasswordHash) {
		f.logger.Debug("login with wrong password", "user_id", user.ID)
		return nil, auth.ErrInvalidCredentials
	}
	return user, nil
}

// EnsureAdmin creates an administrator from in unless one already exists.
// It reports whether a user was created.
func (f *FacadeImpl) EnsureAdmin(ctx context.Context, in CreateUserInput) (bool, error) {
	if in.Password == "" {
		return false, fmt.Errorf("%w: password", ErrMissingField)
	}
	user, err := domain.NewUser(in.FirstName, in.LastName, in.Email, true)
	if err != nil {
		return false, err
	}
	if err := user.SetPassword(in.Password, f.hasher); err != nil {
		return false, err
	}

	created := false
	err = f.inTx(ctx, func(ctx context.Context, tx store.Store) error {
		admins, err := tx.Users().ListByAttribute(ctx, "is_admin", true)
		if err != nil {
			return err
		}
		if len(admins) > 0 {
			return nil
		}
		if err := f.addUser(ctx, tx, user); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to ensure admin: %w", err)
	}

	if created {
		f.logger.Info("bootstrap admin created", "user_id", user.ID)
	}
	return created, nil
}
