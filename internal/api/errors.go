package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/hbnb-api/internal/api/shared"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/service"
	"github.com/phrazzld/hbnb-api/internal/service/auth"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing their types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, auth.ErrForbidden),
		errors.Is(err, auth.ErrAdminRequired),
		errors.Is(err, auth.ErrAdminFlagForbidden):
		return http.StatusForbidden

	// Business-rule violations reported as bad input
	case errors.Is(err, auth.ErrOwnPlaceReview),
		errors.Is(err, auth.ErrAlreadyReviewed),
		errors.Is(err, auth.ErrImmutableCredentials),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrPasswordTooLong),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		service.IsReferenceError(err):
		return http.StatusBadRequest

	// Conflict errors
	case service.IsConflictError(err),
		store.IsDuplicateError(err):
		return http.StatusConflict

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err that never
// includes wrapped internal detail.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}
	if verr, ok := domain.AsValidationError(err); ok {
		return verr.Message
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"
	case errors.Is(err, auth.ErrMissingToken):
		return "Authorization header required"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrForbidden):
		return "Unauthorized action"
	case errors.Is(err, auth.ErrAdminRequired),
		errors.Is(err, auth.ErrAdminFlagForbidden):
		return "Admin privileges required"
	case errors.Is(err, auth.ErrOwnPlaceReview):
		return "You cannot review your own place"
	case errors.Is(err, auth.ErrAlreadyReviewed):
		return "You have already reviewed this place"
	case errors.Is(err, auth.ErrImmutableCredentials):
		return "You cannot modify email or password"
	case errors.Is(err, auth.ErrWeakPassword):
		return "Password must be at least 6 characters long"
	case errors.Is(err, auth.ErrPasswordTooLong):
		return "Password must be at most 72 bytes long"

	case errors.Is(err, service.ErrDuplicateEmail):
		return "Email already registered"
	case errors.Is(err, service.ErrDuplicateAmenity):
		return "Amenity already exists"
	case errors.Is(err, service.ErrMissingField):
		return "Missing required field"
	case errors.Is(err, service.ErrMissingOwner):
		return "Owner is required"
	case errors.Is(err, service.ErrMissingReference):
		return "User and place are required"
	case errors.Is(err, service.ErrOwnerNotFound):
		return "Owner not found"
	case errors.Is(err, service.ErrUserReferenceNotFound):
		return "User not found"
	case errors.Is(err, service.ErrPlaceReferenceNotFound):
		return "Place not found"
	case errors.Is(err, service.ErrAmenityReferenceNotFound):
		return "Amenity not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrPlaceNotFound):
		return "Place not found"
	case errors.Is(err, store.ErrReviewNotFound):
		return "Review not found"
	case errors.Is(err, store.ErrAmenityNotFound):
		return "Amenity not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid input data"
	case store.IsDuplicateError(err):
		return "Resource already exists"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the status and safe message for err. fallback,
// when non-empty, replaces the generic message of a 500.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}

	var opts []shared.ResponseOption
	if status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
