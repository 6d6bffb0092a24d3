package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// openTestDB opens a private in-memory SQLite database with the schema applied.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)&_time_format=sqlite",
		uuid.NewString())
	db, err := sql.Open(DriverSQLite, dsn)
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive and shared.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(context.Background(), db, DriverSQLite, slog.New(slog.NewTextHandler(io.Discard, nil))))
	return db
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(openTestDB(t), DriverSQLite)
	require.NoError(t, err)
	return s
}
