// Package sqlstore implements store.Store on top of database/sql.
//
// Statements are built with goqu so the same repository code runs against
// PostgreSQL (pgx stdlib driver) and SQLite (modernc.org/sqlite). The schema
// is shipped as embedded goose migrations, see Migrate.
package sqlstore
