package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/hbnb-api/internal/config"
	"github.com/phrazzld/hbnb-api/internal/platform/sqlstore"
)

var errNoMigrationDatabase = errors.New("migrations require a SQL database driver")

// runMigrations executes a single goose command against the configured
// database and closes the connection afterwards.
func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger, command string) error {
	if cfg.Database.Driver == config.DriverMemory {
		return errNoMigrationDatabase
	}

	db, err := openDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("Error closing database connection", "error", cerr)
		}
	}()

	migrator, err := sqlstore.NewMigrator(db, cfg.Database.Driver, logger)
	if err != nil {
		return fmt.Errorf("failed to prepare migrations: %w", err)
	}

	logger.Info("Executing migrations", "command", command)
	return migrator.Run(ctx, command)
}
