package service

import "errors"

// Service errors returned by the facade. The API layer maps them to HTTP
// status codes; callers inspect them with errors.Is.
var (
	// ErrDuplicateEmail indicates the email already belongs to another user.
	// API layer should map this to HTTP 409 Conflict.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateAmenity indicates an amenity with the same name exists.
	// API layer should map this to HTTP 409 Conflict.
	ErrDuplicateAmenity = errors.New("amenity already exists")

	// ErrMissingField indicates a required input was empty.
	ErrMissingField = errors.New("missing required field")

	// ErrMissingOwner indicates a place was created without an owner.
	ErrMissingOwner = errors.New("owner is required")

	// ErrMissingReference indicates a review was created without a user or place.
	ErrMissingReference = errors.New("user and place are required")

	// ErrOwnerNotFound indicates the place owner does not exist.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrUserReferenceNotFound indicates a referenced user does not exist.
	ErrUserReferenceNotFound = errors.New("user not found")

	// ErrPlaceReferenceNotFound indicates a referenced place does not exist.
	ErrPlaceReferenceNotFound = errors.New("place not found")

	// ErrAmenityReferenceNotFound indicates a referenced amenity does not exist.
	ErrAmenityReferenceNotFound = errors.New("amenity not found")
)

// IsReferenceError reports whether err is a missing or unresolved reference
// supplied by the caller, as opposed to an absent target resource.
func IsReferenceError(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrMissingOwner) ||
		errors.Is(err, ErrMissingReference) ||
		errors.Is(err, ErrOwnerNotFound) ||
		errors.Is(err, ErrUserReferenceNotFound) ||
		errors.Is(err, ErrPlaceReferenceNotFound) ||
		errors.Is(err, ErrAmenityReferenceNotFound)
}

// IsConflictError reports whether err is a uniqueness conflict.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail) || errors.Is(err, ErrDuplicateAmenity)
}
