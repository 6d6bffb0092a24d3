package sqlstore

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	// Register the goqu dialects for the supported drivers.
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/pressly/goose/v3"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// dialect ties a database/sql driver to its goqu and goose dialects.
type dialect struct {
	driver string
	goqu   goqu.DialectWrapper
	goose  goose.Dialect
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case DriverPostgres:
		return dialect{driver: driver, goqu: goqu.Dialect("postgres"), goose: goose.DialectPostgres}, nil
	case DriverSQLite:
		return dialect{driver: driver, goqu: goqu.Dialect("sqlite3"), goose: goose.DialectSQLite3}, nil
	default:
		return dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}
