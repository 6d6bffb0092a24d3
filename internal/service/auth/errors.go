package auth

import "errors"

// Token errors.
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWrongTokenType indicates a token of another type was presented
	ErrWrongTokenType = errors.New("wrong token type")
)

// Credential errors.
var (
	// ErrWeakPassword is returned for passwords shorter than MinPasswordLength.
	ErrWeakPassword = errors.New("password must be at least 6 characters long")

	// ErrPasswordTooLong is returned for passwords bcrypt cannot hash in full.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes long")

	// ErrInvalidCredentials is returned when an email/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Authorization errors.
var (
	// ErrForbidden is returned when the caller may not act on a resource.
	ErrForbidden = errors.New("unauthorized action")

	// ErrAdminRequired is returned for admin-only operations.
	ErrAdminRequired = errors.New("admin privileges required")

	// ErrAdminFlagForbidden is returned when a non-admin tries to register an admin.
	ErrAdminFlagForbidden = errors.New("only administrators can create admin users")

	// ErrImmutableCredentials is returned when a non-admin tries to change
	// email or password through a profile update.
	ErrImmutableCredentials = errors.New("you cannot modify email or password")

	// ErrOwnPlaceReview is returned when an owner reviews their own place.
	ErrOwnPlaceReview = errors.New("you cannot review your own place")

	// ErrAlreadyReviewed is returned for a second review of the same place.
	ErrAlreadyReviewed = errors.New("you have already reviewed this place")
)
