package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
)

// Entity is implemented by every persisted domain type. Attributes returns
// the persisted fields keyed by column name; Clone returns an independent copy.
type Entity[T any] interface {
	GetID() uuid.UUID
	Attributes() map[string]any
	Clone() T
}

// Repository is keyed storage for one entity type.
//
// Get and GetByAttribute return an error wrapping ErrNotFound when nothing
// matches. Update and Delete of an unknown ID are no-ops. Add rejects an ID
// that is already present with ErrDuplicate.
type Repository[T Entity[T]] interface {
	Add(ctx context.Context, entity T) error
	Get(ctx context.Context, id uuid.UUID) (T, error)
	GetAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByAttribute returns the first entity whose attribute equals value.
	// Unknown attribute names never match.
	GetByAttribute(ctx context.Context, name string, value any) (T, error)

	// ListByAttribute returns every entity whose attribute equals value.
	ListByAttribute(ctx context.Context, name string, value any) ([]T, error)
}

// PlaceAmenityStore keeps the many-to-many link between places and amenities.
type PlaceAmenityStore interface {
	// Link associates an amenity with a place. Linking twice is a no-op.
	Link(ctx context.Context, placeID, amenityID uuid.UUID) error

	// Unlink removes the association if present.
	Unlink(ctx context.Context, placeID, amenityID uuid.UUID) error

	// AmenityIDs lists the amenities linked to a place in link order.
	AmenityIDs(ctx context.Context, placeID uuid.UUID) ([]uuid.UUID, error)
}

// Store bundles the repositories used by the application.
type Store interface {
	Users() Repository[*domain.User]
	Places() Repository[*domain.Place]
	Reviews() Repository[*domain.Review]
	Amenities() Repository[*domain.Amenity]
	PlaceAmenities() PlaceAmenityStore

	// RunInTx runs fn against a Store scoped to a single unit of work.
	// Changes made through tx are committed when fn returns nil.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

// DBTX is an interface that abstracts the database access layer.
// It is implemented by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
