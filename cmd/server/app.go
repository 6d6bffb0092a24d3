package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/hbnb-api/internal/config"
	"github.com/phrazzld/hbnb-api/internal/platform/sqlstore"
	"github.com/phrazzld/hbnb-api/internal/service"
	"github.com/phrazzld/hbnb-api/internal/service/auth"
	"github.com/phrazzld/hbnb-api/internal/store"
	"github.com/phrazzld/hbnb-api/internal/store/memory"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil for the memory driver.
	db    *sql.DB
	store store.Store

	jwtService auth.JWTService
	facade     service.Facade
}

// newApplication wires storage, authentication and the facade from cfg.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if err := app.setupStore(ctx); err != nil {
		return nil, err
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	app.facade = service.NewFacade(app.store, hasher, logger)

	if cfg.Auth.HasBootstrapAdmin() {
		if err := app.ensureAdmin(ctx); err != nil {
			app.cleanup()
			return nil, err
		}
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

func (app *application) setupStore(ctx context.Context) error {
	dbCfg := app.config.Database
	if dbCfg.Driver == config.DriverMemory {
		app.store = memory.NewStore()
		app.logger.Warn("Using in-memory storage; data is lost on restart")
		return nil
	}

	db, err := openDatabase(ctx, dbCfg, app.logger)
	if err != nil {
		return err
	}
	app.db = db

	if dbCfg.AutoMigrate {
		if err := sqlstore.Migrate(ctx, db, dbCfg.Driver, app.logger); err != nil {
			app.cleanup()
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	st, err := sqlstore.New(db, dbCfg.Driver)
	if err != nil {
		app.cleanup()
		return fmt.Errorf("failed to create SQL store: %w", err)
	}
	app.store = st
	return nil
}

// ensureAdmin creates the configured bootstrap administrator when no
// administrator exists yet.
func (app *application) ensureAdmin(ctx context.Context) error {
	a := app.config.Auth
	created, err := app.facade.EnsureAdmin(ctx, service.CreateUserInput{
		FirstName: a.AdminFirstName,
		LastName:  a.AdminLastName,
		Email:     a.AdminEmail,
		Password:  a.AdminPassword,
		IsAdmin:   true,
	})
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin user: %w", err)
	}
	if created {
		app.logger.Info("Bootstrap admin user created")
	}
	return nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
		app.db = nil
	}
	app.logger.Info("Application shutdown completed")
}
