package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/hbnb-api/internal/platform/sqlstore"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// TestTimeout bounds setup queries against the test database.
const TestTimeout = 5 * time.Second

// Environment variables consulted for the Postgres test database, in order.
const (
	EnvTestDatabaseURL = "HBNB_TEST_DATABASE_URL"
	EnvDatabaseURL     = "DATABASE_URL"
)

// Tables in dependency order, children first.
var tables = []string{"place_amenity", "reviews", "places", "amenities", "users"}

// GetTestDatabaseURL returns the Postgres URL for integration tests, or ""
// when none is configured.
func GetTestDatabaseURL() string {
	if url := os.Getenv(EnvTestDatabaseURL); url != "" {
		return url
	}
	return os.Getenv(EnvDatabaseURL)
}

// IsIntegrationTestEnvironment reports whether a Postgres test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// ShouldSkipDatabaseTest reports whether Postgres-backed tests should be skipped.
func ShouldSkipDatabaseTest() bool {
	return !IsIntegrationTestEnvironment()
}

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SQLiteDSN returns the DSN of a fresh, uniquely named in-memory database.
// Foreign keys are enforced and times use SQLite's text format.
func SQLiteDSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)&_time_format=sqlite",
		uuid.NewString())
}

// OpenSQLite returns a migrated in-memory SQLite database that is closed
// when the test ends.
func OpenSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open(sqlstore.DriverSQLite, SQLiteDSN())
	require.NoError(t, err, "Failed to open SQLite database")
	// A single connection keeps the in-memory database alive.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { CleanupDB(t, db) })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, sqlstore.Migrate(ctx, db, sqlstore.DriverSQLite, silentLogger()),
		"Failed to run migrations")
	return db
}

// OpenPostgres returns the migrated, emptied Postgres test database, or
// skips the test when none is configured.
func OpenPostgres(t *testing.T) *sql.DB {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		t.Skipf("%s not set - skipping Postgres integration test", EnvTestDatabaseURL)
	}

	db, err := sql.Open(sqlstore.DriverPostgres, GetTestDatabaseURL())
	require.NoError(t, err, "Failed to open Postgres database")
	t.Cleanup(func() { CleanupDB(t, db) })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	require.NoError(t, db.PingContext(ctx), "Failed to ping Postgres test database")
	require.NoError(t, sqlstore.Migrate(ctx, db, sqlstore.DriverPostgres, silentLogger()),
		"Failed to run migrations")
	TruncateAll(t, db)
	return db
}

// TruncateAll deletes every row from the application tables.
func TruncateAll(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	for _, table := range tables {
		_, err := db.ExecContext(ctx, "DELETE FROM "+table)
		require.NoError(t, err, "Failed to empty table %s", table)
	}
}

// WithTx executes fn within a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		err := tx.Rollback()
		// sql.ErrTxDone is expected if fn already finished the transaction
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// CleanupDB closes db, logging rather than failing on error.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close database connection: %v", err)
	}
}
