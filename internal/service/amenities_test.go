package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/service"
	"github.com/phrazzld/hbnb-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_Amenities(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFacade(t)

	wifi, err := f.CreateAmenity(ctx, service.CreateAmenityInput{Name: " Wi-Fi "})
	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi", wifi.Name)

	_, err = f.CreateAmenity(ctx, service.CreateAmenityInput{Name: "Wi-Fi"})
	assert.ErrorIs(t, err, service.ErrDuplicateAmenity)
	assert.True(t, service.IsConflictError(err))

	_, err = f.CreateAmenity(ctx, service.CreateAmenityInput{Name: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)

	pool, err := f.CreateAmenity(ctx, service.CreateAmenityInput{Name: "Pool"})
	require.NoError(t, err)

	_, err = f.UpdateAmenity(ctx, pool.ID, domain.AmenityUpdate{Name: strPtr("Wi-Fi")})
	assert.ErrorIs(t, err, service.ErrDuplicateAmenity)

	renamed, err := f.UpdateAmenity(ctx, pool.ID, domain.AmenityUpdate{Name: strPtr("Heated Pool")})
	require.NoError(t, err)
	assert.Equal(t, "Heated Pool", renamed.Name)

	same, err := f.UpdateAmenity(ctx, wifi.ID, domain.AmenityUpdate{Name: strPtr("Wi-Fi")})
	require.NoError(t, err, "renaming to its own name is allowed")
	assert.Equal(t, wifi.ID, same.ID)

	_, err = f.UpdateAmenity(ctx, uuid.New(), domain.AmenityUpdate{Name: strPtr("X")})
	assert.ErrorIs(t, err, store.ErrAmenityNotFound)

	got, err := f.GetAmenity(ctx, pool.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heated Pool", got.Name)

	all, err := f.GetAllAmenities(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, wifi.ID, all[0].ID)
}
