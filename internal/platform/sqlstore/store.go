package sqlstore

import (
	"context"
	"database/sql"

	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// Store is a store.Store backed by a SQL database.
type Store struct {
	db      *sql.DB
	q       store.DBTX
	tx      *sql.Tx
	dialect dialect
}

var _ store.Store = (*Store)(nil)

// New returns a Store for db. driver is the database/sql driver name db was
// opened with (DriverPostgres or DriverSQLite).
func New(db *sql.DB, driver string) (*Store, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, q: db, dialect: d}, nil
}

// WithTx returns a Store whose repositories run inside tx.
func (s *Store) WithTx(tx *sql.Tx) *Store {
	return &Store{db: s.db, q: tx, tx: tx, dialect: s.dialect}
}

// Users returns the user repository.
func (s *Store) Users() store.Repository[*domain.User] {
	return newRepository(s.q, s.dialect.goqu, usersTable)
}

// Places returns the place repository.
func (s *Store) Places() store.Repository[*domain.Place] {
	return newRepository(s.q, s.dialect.goqu, placesTable)
}

// Reviews returns the review repository.
func (s *Store) Reviews() store.Repository[*domain.Review] {
	return newRepository(s.q, s.dialect.goqu, reviewsTable)
}

// Amenities returns the amenity repository.
func (s *Store) Amenities() store.Repository[*domain.Amenity] {
	return newRepository(s.q, s.dialect.goqu, amenitiesTable)
}

// PlaceAmenities returns the place/amenity link store.
func (s *Store) PlaceAmenities() store.PlaceAmenityStore {
	return &PlaceAmenities{db: s.q, dialect: s.dialect.goqu}
}

// RunInTx runs fn in a database transaction. When s is already bound to a
// transaction, fn joins it.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, tx store.Store) error) error {
	if s.tx != nil {
		return fn(ctx, s)
	}
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, s.WithTx(tx))
	})
}
