package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_UpdateWithCurrentValues(t *testing.T) {
	t.Parallel()
	assertUpdatesKeepCurrentValues(t, newFacade(t))
}

func TestFacade_SQLStoreUpdateWithCurrentValues(t *testing.T) {
	t.Parallel()
	assertUpdatesKeepCurrentValues(t, newSQLFacade(t))
}

// withoutUpdatedAt returns a copy of v with UpdatedAt zeroed and the
// original UpdatedAt.
func withoutUpdatedAt[T any](v T, updatedAt func(*T) *time.Time) (T, time.Time) {
	ts := *updatedAt(&v)
	*updatedAt(&v) = time.Time{}
	return v, ts
}

// assertUpdatesKeepCurrentValues sends every entity its own current values
// through the facade and checks that only UpdatedAt may change, and only
// forwards.
func assertUpdatesKeepCurrentValues(t *testing.T, f service.Facade) {
	t.Helper()
	ctx := context.Background()

	owner := createUser(t, f, "owner@example.com")
	guest := createUser(t, f, "guest@example.com")
	place := createPlace(t, f, owner.ID)
	review, err := f.CreateReview(ctx, service.CreateReviewInput{
		Text: "Great stay", Rating: 4, UserID: guest.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)
	amenity, err := f.CreateAmenity(ctx, service.CreateAmenityInput{Name: "Wi-Fi"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		update func(t *testing.T) (before, after, stored any, beforeTS, afterTS time.Time)
	}{
		{"user", func(t *testing.T) (any, any, any, time.Time, time.Time) {
			ts := func(u *domain.User) *time.Time { return &u.UpdatedAt }
			updated, err := f.UpdateUser(ctx, owner.ID, domain.UserUpdate{
				FirstName: strPtr(owner.FirstName),
				LastName:  strPtr(owner.LastName),
				Email:     strPtr(owner.Email),
			})
			require.NoError(t, err)
			got, err := f.GetUser(ctx, owner.ID)
			require.NoError(t, err)
			before, beforeTS := withoutUpdatedAt(*owner, ts)
			after, afterTS := withoutUpdatedAt(*updated, ts)
			stored, _ := withoutUpdatedAt(*got, ts)
			return before, after, stored, beforeTS, afterTS
		}},
		{"place", func(t *testing.T) (any, any, any, time.Time, time.Time) {
			ts := func(p *domain.Place) *time.Time { return &p.UpdatedAt }
			updated, err := f.UpdatePlace(ctx, place.ID, domain.PlaceUpdate{
				Title:       strPtr(place.Title),
				Description: strPtr(place.Description),
				Price:       floatPtr(place.Price),
				Latitude:    floatPtr(place.Latitude),
				Longitude:   floatPtr(place.Longitude),
			})
			require.NoError(t, err)
			got, err := f.GetPlace(ctx, place.ID)
			require.NoError(t, err)
			before, beforeTS := withoutUpdatedAt(*place, ts)
			after, afterTS := withoutUpdatedAt(*updated, ts)
			stored, _ := withoutUpdatedAt(*got, ts)
			return before, after, stored, beforeTS, afterTS
		}},
		{"review", func(t *testing.T) (any, any, any, time.Time, time.Time) {
			ts := func(r *domain.Review) *time.Time { return &r.UpdatedAt }
			updated, err := f.UpdateReview(ctx, review.ID, domain.ReviewUpdate{
				Text:   strPtr(review.Text),
				Rating: floatPtr(float64(review.Rating)),
			})
			require.NoError(t, err)
			got, err := f.GetReview(ctx, review.ID)
			require.NoError(t, err)
			before, beforeTS := withoutUpdatedAt(*review, ts)
			after, afterTS := withoutUpdatedAt(*updated, ts)
			stored, _ := withoutUpdatedAt(*got, ts)
			return before, after, stored, beforeTS, afterTS
		}},
		{"amenity", func(t *testing.T) (any, any, any, time.Time, time.Time) {
			ts := func(a *domain.Amenity) *time.Time { return &a.UpdatedAt }
			updated, err := f.UpdateAmenity(ctx, amenity.ID, domain.AmenityUpdate{Name: strPtr(amenity.Name)})
			require.NoError(t, err)
			got, err := f.GetAmenity(ctx, amenity.ID)
			require.NoError(t, err)
			before, beforeTS := withoutUpdatedAt(*amenity, ts)
			after, afterTS := withoutUpdatedAt(*updated, ts)
			stored, _ := withoutUpdatedAt(*got, ts)
			return before, after, stored, beforeTS, afterTS
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, after, stored, beforeTS, afterTS := tt.update(t)
			assert.Equal(t, before, after)
			assert.Equal(t, before, stored)
			assert.False(t, afterTS.Before(beforeTS), "updated_at moved backwards")
		})
	}
}
