package auth

import (
	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
)

// Principal is the authenticated caller of an operation. The zero value is
// an anonymous caller.
type Principal struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// Authenticated reports whether the principal identifies a user.
func (p Principal) Authenticated() bool {
	return p.UserID != uuid.Nil
}

// RequireAdmin allows only administrators.
func (p Principal) RequireAdmin() error {
	if !p.IsAdmin {
		return ErrAdminRequired
	}
	return nil
}

// CanRegister checks whether the caller may create a user with the given admin flag.
func (p Principal) CanRegister(isAdmin bool) error {
	if isAdmin && !p.IsAdmin {
		return ErrAdminFlagForbidden
	}
	return nil
}

// CanUpdateUser checks a profile update of targetID. Users may edit only
// their own names; administrators may edit anyone, credentials included.
func (p Principal) CanUpdateUser(targetID uuid.UUID, upd domain.UserUpdate) error {
	if p.IsAdmin {
		return nil
	}
	if p.UserID != targetID {
		return ErrForbidden
	}
	if upd.Email != nil || upd.Password != nil {
		return ErrImmutableCredentials
	}
	return nil
}

// CanModifyPlace allows the owner or an administrator.
func (p Principal) CanModifyPlace(place *domain.Place) error {
	if p.IsAdmin || place.OwnerID == p.UserID {
		return nil
	}
	return ErrForbidden
}

// CanReview checks whether the caller may review place. Administrators are exempt.
func (p Principal) CanReview(place *domain.Place, alreadyReviewed bool) error {
	if p.IsAdmin {
		return nil
	}
	if place.OwnerID == p.UserID {
		return ErrOwnPlaceReview
	}
	if alreadyReviewed {
		return ErrAlreadyReviewed
	}
	return nil
}

// CanModifyReview allows the author or an administrator.
func (p Principal) CanModifyReview(review *domain.Review) error {
	if p.IsAdmin || review.UserID == p.UserID {
		return nil
	}
	return ErrForbidden
}
