package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/hbnb-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorPostgres(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: pgUniqueViolation}, want: store.ErrDuplicate},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "places_owner_id_fkey"}, want: store.ErrInvalidEntity},
		{name: "check violation", err: &pgconn.PgError{Code: pgCheckViolation}, want: store.ErrInvalidEntity},
		{name: "not null violation", err: &pgconn.PgError{Code: pgNotNullViolation, ColumnName: "title"}, want: store.ErrInvalidEntity},
		{name: "wrapped unique violation", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgUniqueViolation}), want: store.ErrDuplicate},
		{name: "no rows", err: sql.ErrNoRows, want: store.ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, MapError(tc.err), tc.want)
		})
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MapError(nil))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, MapError(plain))

	other := &pgconn.PgError{Code: "40001"}
	assert.Equal(t, error(other), MapError(other))
}

func TestMapErrorSQLite(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO amenities (id, name, created_at, updated_at)
		VALUES ('a', 'Pool', '2024-01-01 00:00:00+00:00', '2024-01-01 00:00:00+00:00')`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO amenities (id, name, created_at, updated_at)
		VALUES ('b', 'Pool', '2024-01-01 00:00:00+00:00', '2024-01-01 00:00:00+00:00')`)
	require.Error(t, err)
	assert.ErrorIs(t, MapError(err), store.ErrDuplicate)

	_, err = db.ExecContext(ctx, `INSERT INTO place_amenity (place_id, amenity_id, created_at)
		VALUES ('missing', 'a', '2024-01-01 00:00:00+00:00')`)
	require.Error(t, err)
	assert.ErrorIs(t, MapError(err), store.ErrInvalidEntity)
}
