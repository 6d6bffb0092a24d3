package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// Facade is the set of operations available to request handlers.
type Facade interface {
	// Users
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	EnsureAdmin(ctx context.Context, in CreateUserInput) (bool, error)

	// Places
	CreatePlace(ctx context.Context, in CreatePlaceInput) (*domain.Place, error)
	GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	GetAllPlaces(ctx context.Context) ([]*domain.Place, error)
	GetPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)
	UpdatePlace(ctx context.Context, id uuid.UUID, upd domain.PlaceUpdate) (*domain.Place, error)
	AddPlaceAmenity(ctx context.Context, placeID, amenityID uuid.UUID) error
	RemovePlaceAmenity(ctx context.Context, placeID, amenityID uuid.UUID) error
	GetPlaceAmenities(ctx context.Context, placeID uuid.UUID) ([]*domain.Amenity, error)

	// Reviews
	CreateReview(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	GetAllReviews(ctx context.Context) ([]*domain.Review, error)
	GetReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error)
	HasReviewed(ctx context.Context, userID, placeID uuid.UUID) (bool, error)
	UpdateReview(ctx context.Context, id uuid.UUID, upd domain.ReviewUpdate) (*domain.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) (bool, error)

	// Amenities
	CreateAmenity(ctx context.Context, in CreateAmenityInput) (*domain.Amenity, error)
	GetAmenity(ctx context.Context, id uuid.UUID) (*domain.Amenity, error)
	GetAllAmenities(ctx context.Context) ([]*domain.Amenity, error)
	UpdateAmenity(ctx context.Context, id uuid.UUID, upd domain.AmenityUpdate) (*domain.Amenity, error)
}

// PasswordHasher hashes new passwords and verifies login attempts.
type PasswordHasher interface {
	domain.PasswordHasher
	Verify(plaintext, hash string) bool
}

// CreateUserInput holds the fields accepted when registering a user.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// CreatePlaceInput holds the fields accepted when listing a place.
// AmenityIDs, if any, must reference existing amenities.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     uuid.UUID
	AmenityIDs  []uuid.UUID
}

// CreateReviewInput holds the fields accepted when reviewing a place.
// ReviewerIsAdmin exempts the review from the own-place and
// one-review-per-place rules.
type CreateReviewInput struct {
	Text            string
	Rating          float64
	UserID          uuid.UUID
	PlaceID         uuid.UUID
	ReviewerIsAdmin bool
}

// CreateAmenityInput holds the fields accepted when creating an amenity.
type CreateAmenityInput struct {
	Name string
}

// FacadeImpl implements Facade on top of a store.Store.
type FacadeImpl struct {
	store  store.Store
	hasher PasswordHasher
	logger *slog.Logger
}

var _ Facade = (*FacadeImpl)(nil)

// NewFacade creates a facade over st. A nil logger falls back to slog.Default().
func NewFacade(st store.Store, hasher PasswordHasher, logger *slog.Logger) *FacadeImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &FacadeImpl{
		store:  st,
		hasher: hasher,
		logger: logger.With("component", "facade"),
	}
}

// inTx runs fn in a unit of work.
func (f *FacadeImpl) inTx(ctx context.Context, fn func(ctx context.Context, tx store.Store) error) error {
	return f.store.RunInTx(ctx, fn)
}

// read runs a single-value query in a unit of work.
func read[T any](ctx context.Context, f *FacadeImpl, fn func(ctx context.Context, tx store.Store) (T, error)) (T, error) {
	var out T
	err := f.inTx(ctx, func(ctx context.Context, tx store.Store) error {
		var err error
		out, err = fn(ctx, tx)
		return err
	})
	return out, err
}
