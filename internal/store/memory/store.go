package memory

import (
	"context"
	"sync"

	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// Store is an in-memory store.Store.
//
// RunInTx serializes units of work with a store-wide lock, which keeps
// check-then-act sequences (such as the email uniqueness check before an
// insert) atomic. A failed unit of work is not rolled back.
type Store struct {
	txMu           sync.Mutex
	users          *Repository[*domain.User]
	places         *Repository[*domain.Place]
	reviews        *Repository[*domain.Review]
	amenities      *Repository[*domain.Amenity]
	placeAmenities *PlaceAmenities
}

var _ store.Store = (*Store)(nil)

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:          NewRepository[*domain.User](store.ErrUserNotFound),
		places:         NewRepository[*domain.Place](store.ErrPlaceNotFound),
		reviews:        NewRepository[*domain.Review](store.ErrReviewNotFound),
		amenities:      NewRepository[*domain.Amenity](store.ErrAmenityNotFound),
		placeAmenities: NewPlaceAmenities(),
	}
}

// Users returns the user repository.
func (s *Store) Users() store.Repository[*domain.User] { return s.users }

// Places returns the place repository.
func (s *Store) Places() store.Repository[*domain.Place] { return s.places }

// Reviews returns the review repository.
func (s *Store) Reviews() store.Repository[*domain.Review] { return s.reviews }

// Amenities returns the amenity repository.
func (s *Store) Amenities() store.Repository[*domain.Amenity] { return s.amenities }

// PlaceAmenities returns the place/amenity link store.
func (s *Store) PlaceAmenities() store.PlaceAmenityStore { return s.placeAmenities }

// RunInTx runs fn while holding the store-wide lock. Calls must not nest.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, tx store.Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, s)
}
