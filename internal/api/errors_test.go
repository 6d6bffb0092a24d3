package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/service"
	"github.com/phrazzld/hbnb-api/internal/service/auth"
	"github.com/phrazzld/hbnb-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	wrap := func(err error) error { return fmt.Errorf("failed to do thing: %w", err) }

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", auth.ErrForbidden, http.StatusForbidden},
		{"admin required", auth.ErrAdminRequired, http.StatusForbidden},
		{"admin flag", auth.ErrAdminFlagForbidden, http.StatusForbidden},
		{"own place review", auth.ErrOwnPlaceReview, http.StatusBadRequest},
		{"already reviewed", auth.ErrAlreadyReviewed, http.StatusBadRequest},
		{"immutable credentials", auth.ErrImmutableCredentials, http.StatusBadRequest},
		{"weak password", wrap(auth.ErrWeakPassword), http.StatusBadRequest},
		{"validation", wrap(domain.NewValidationError("price", "Price must be a positive number")), http.StatusBadRequest},
		{"missing owner", wrap(service.ErrMissingOwner), http.StatusBadRequest},
		{"place reference", wrap(service.ErrPlaceReferenceNotFound), http.StatusBadRequest},
		{"duplicate email", wrap(service.ErrDuplicateEmail), http.StatusConflict},
		{"duplicate amenity", wrap(service.ErrDuplicateAmenity), http.StatusConflict},
		{"store duplicate", store.ErrDuplicate, http.StatusConflict},
		{"user not found", wrap(store.ErrUserNotFound), http.StatusNotFound},
		{"review not found", store.ErrReviewNotFound, http.StatusNotFound},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"validation message passes through", fmt.Errorf("x: %w", domain.NewValidationError("latitude", "Latitude must be between -90 and 90")), "Latitude must be between -90 and 90"},
		{"own place", auth.ErrOwnPlaceReview, "You cannot review your own place"},
		{"already reviewed", auth.ErrAlreadyReviewed, "You have already reviewed this place"},
		{"immutable credentials", auth.ErrImmutableCredentials, "You cannot modify email or password"},
		{"forbidden", auth.ErrForbidden, "Unauthorized action"},
		{"place reference", service.ErrPlaceReferenceNotFound, "Place not found"},
		{"place absent", fmt.Errorf("get: %w", store.ErrPlaceNotFound), "Place not found"},
		{"amenity absent", store.ErrAmenityNotFound, "Amenity not found"},
		{"duplicate email", service.ErrDuplicateEmail, "Email already registered"},
		{"internal detail hidden", errors.New("pq: password authentication failed for user hbnb"), "An unexpected error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}
