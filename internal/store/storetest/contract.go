// Package storetest holds the behavioral contract every store.Store
// implementation must satisfy. Implementations call RunContract from their
// own tests.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, empty store for one subtest.
type Factory func(t *testing.T) store.Store

// RunContract runs the shared repository contract against stores built by newStore.
func RunContract(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("AddAndGet", func(t *testing.T) { testAddAndGet(t, newStore(t)) })
	t.Run("GetMissing", func(t *testing.T) { testGetMissing(t, newStore(t)) })
	t.Run("AddDuplicateID", func(t *testing.T) { testAddDuplicateID(t, newStore(t)) })
	t.Run("GetAllOrder", func(t *testing.T) { testGetAllOrder(t, newStore(t)) })
	t.Run("Update", func(t *testing.T) { testUpdate(t, newStore(t)) })
	t.Run("UpdateUnknownIsNoop", func(t *testing.T) { testUpdateUnknown(t, newStore(t)) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, newStore(t)) })
	t.Run("GetByAttribute", func(t *testing.T) { testGetByAttribute(t, newStore(t)) })
	t.Run("ListByAttribute", func(t *testing.T) { testListByAttribute(t, newStore(t)) })
	t.Run("PlaceAmenities", func(t *testing.T) { testPlaceAmenities(t, newStore(t)) })
	t.Run("RunInTx", func(t *testing.T) { testRunInTx(t, newStore(t)) })
}

var fixtureBase = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// NewUser builds a valid user with a placeholder password hash.
func NewUser(t *testing.T, email string) *domain.User {
	t.Helper()
	u, err := domain.NewUser("Test", "User", email, false)
	require.NoError(t, err)
	u.PasswordHash = "$2a$10$placeholderplaceholderplaceholderplaceholderplace"
	return u
}

// NewPlace builds a valid place owned by ownerID.
func NewPlace(t *testing.T, title string, ownerID uuid.UUID) *domain.Place {
	t.Helper()
	p, err := domain.NewPlace(title, "A place", 100, 10, 20, ownerID)
	require.NoError(t, err)
	return p
}

// NewReview builds a valid review.
func NewReview(t *testing.T, userID, placeID uuid.UUID, rating float64) *domain.Review {
	t.Helper()
	r, err := domain.NewReview("Lovely", rating, userID, placeID)
	require.NoError(t, err)
	return r
}

// NewAmenity builds a valid amenity.
func NewAmenity(t *testing.T, name string) *domain.Amenity {
	t.Helper()
	a, err := domain.NewAmenity(name)
	require.NoError(t, err)
	return a
}

func testAddAndGet(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := NewUser(t, "add@example.com")
	require.NoError(t, s.Users().Add(ctx, u))

	got, err := s.Users().Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	// Mutating the returned copy must not leak into the store.
	got.FirstName = "Changed"
	again, err := s.Users().Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test", again.FirstName)
}

func testGetMissing(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.Users().Get(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = s.Places().Get(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrPlaceNotFound)

	_, err = s.Reviews().Get(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrReviewNotFound)

	_, err = s.Amenities().Get(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrAmenityNotFound)
}

func testAddDuplicateID(t *testing.T, s store.Store) {
	ctx := context.Background()
	a := NewAmenity(t, "Pool")
	require.NoError(t, s.Amenities().Add(ctx, a))

	dup := a.Clone()
	dup.Name = "Sauna"
	err := s.Amenities().Add(ctx, dup)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	got, err := s.Amenities().Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pool", got.Name)
}

func testGetAllOrder(t *testing.T, s store.Store) {
	ctx := context.Background()

	all, err := s.Amenities().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	var want []uuid.UUID
	for i := 0; i < 3; i++ {
		a := NewAmenity(t, fmt.Sprintf("Amenity %d", i))
		a.CreatedAt = fixtureBase.Add(time.Duration(i) * time.Second)
		a.UpdatedAt = a.CreatedAt
		require.NoError(t, s.Amenities().Add(ctx, a))
		want = append(want, a.ID)
	}

	all, err = s.Amenities().GetAll(ctx)
	require.NoError(t, err)
	var got []uuid.UUID
	for _, a := range all {
		got = append(got, a.ID)
	}
	assert.Equal(t, want, got)
}

func testUpdate(t *testing.T, s store.Store) {
	ctx := context.Background()
	owner := NewUser(t, "owner@example.com")
	require.NoError(t, s.Users().Add(ctx, owner))
	p := NewPlace(t, "Loft", owner.ID)
	require.NoError(t, s.Places().Add(ctx, p))

	price := 250.0
	require.NoError(t, p.Apply(domain.PlaceUpdate{Price: &price}))
	require.NoError(t, s.Places().Update(ctx, p))

	got, err := s.Places().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 250.0, got.Price)
	assert.Equal(t, p.UpdatedAt, got.UpdatedAt)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)
}

func testUpdateUnknown(t *testing.T, s store.Store) {
	ctx := context.Background()
	a := NewAmenity(t, "Ghost")

	require.NoError(t, s.Amenities().Update(ctx, a))
	_, err := s.Amenities().Get(ctx, a.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testDelete(t *testing.T, s store.Store) {
	ctx := context.Background()
	a := NewAmenity(t, "Gym")
	require.NoError(t, s.Amenities().Add(ctx, a))

	require.NoError(t, s.Amenities().Delete(ctx, a.ID))
	_, err := s.Amenities().Get(ctx, a.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Deleting again, or deleting an unknown ID, is a no-op.
	assert.NoError(t, s.Amenities().Delete(ctx, a.ID))
	assert.NoError(t, s.Amenities().Delete(ctx, uuid.New()))
}

func testGetByAttribute(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := NewUser(t, "lookup@example.com")
	require.NoError(t, s.Users().Add(ctx, u))

	got, err := s.Users().GetByAttribute(ctx, "email", "lookup@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Users().GetByAttribute(ctx, "email", "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetByAttribute(ctx, "no_such_column", "x")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testListByAttribute(t *testing.T, s store.Store) {
	ctx := context.Background()
	alice := NewUser(t, "alice@example.com")
	bob := NewUser(t, "bob@example.com")
	require.NoError(t, s.Users().Add(ctx, alice))
	require.NoError(t, s.Users().Add(ctx, bob))

	for i, owner := range []uuid.UUID{alice.ID, bob.ID, alice.ID} {
		p := NewPlace(t, fmt.Sprintf("Place %d", i), owner)
		p.CreatedAt = fixtureBase.Add(time.Duration(i) * time.Minute)
		require.NoError(t, s.Places().Add(ctx, p))
	}

	places, err := s.Places().ListByAttribute(ctx, "owner_id", alice.ID)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Place 0", places[0].Title)
	assert.Equal(t, "Place 2", places[1].Title)

	none, err := s.Places().ListByAttribute(ctx, "owner_id", uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)

	unknown, err := s.Places().ListByAttribute(ctx, "no_such_column", alice.ID)
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func testPlaceAmenities(t *testing.T, s store.Store) {
	ctx := context.Background()
	owner := NewUser(t, "host@example.com")
	require.NoError(t, s.Users().Add(ctx, owner))
	p := NewPlace(t, "Cabin", owner.ID)
	require.NoError(t, s.Places().Add(ctx, p))
	wifi := NewAmenity(t, "Wi-Fi")
	pool := NewAmenity(t, "Pool")
	require.NoError(t, s.Amenities().Add(ctx, wifi))
	require.NoError(t, s.Amenities().Add(ctx, pool))

	links := s.PlaceAmenities()
	ids, err := links.AmenityIDs(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, links.Link(ctx, p.ID, wifi.ID))
	require.NoError(t, links.Link(ctx, p.ID, pool.ID))
	require.NoError(t, links.Link(ctx, p.ID, wifi.ID))

	ids, err = links.AmenityIDs(ctx, p.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{wifi.ID, pool.ID}, ids)

	require.NoError(t, links.Unlink(ctx, p.ID, wifi.ID))
	require.NoError(t, links.Unlink(ctx, p.ID, wifi.ID))
	ids, err = links.AmenityIDs(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{pool.ID}, ids)
}

func testRunInTx(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := NewUser(t, "tx@example.com")

	err := s.RunInTx(ctx, func(ctx context.Context, tx store.Store) error {
		return tx.Users().Add(ctx, u)
	})
	require.NoError(t, err)

	err = s.RunInTx(ctx, func(ctx context.Context, tx store.Store) error {
		got, err := tx.Users().Get(ctx, u.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, u.Email, got.Email)
		return nil
	})
	require.NoError(t, err)

	sentinel := errors.New("abort")
	err = s.RunInTx(ctx, func(ctx context.Context, tx store.Store) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}
