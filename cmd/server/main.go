// Package main implements the entry point for the HBnB API server, which
// serves the users, places, reviews and amenities of a booking service.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/hbnb-api/internal/config"
	"github.com/phrazzld/hbnb-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a database migration command and exit (up, down, reset, status, version)")
	flag.Parse()

	cfg, lg, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()

	if *migrateCmd != "" {
		if err := runMigrations(ctx, cfg, lg, *migrateCmd); err != nil {
			lg.Error("Migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	app, err := newApplication(ctx, cfg, lg)
	if err != nil {
		lg.Error("Failed to create application", "error", err)
		os.Exit(1)
	}
	if err := app.Run(ctx); err != nil {
		lg.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	lg, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	lg.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)
	if cfg.Database.URL != "" {
		lg.Debug("Database configuration", "url_present", true)
	}
	if cfg.Auth.HasBootstrapAdmin() {
		lg.Debug("Auth configuration", "bootstrap_admin", true)
	}

	return cfg, lg, nil
}
