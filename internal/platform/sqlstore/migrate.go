package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migration commands accepted by Migrator.Run.
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateReset   = "reset"
	MigrateStatus  = "status"
	MigrateVersion = "version"
)

// Migrator applies the embedded schema migrations with goose.
type Migrator struct {
	provider *goose.Provider
	logger   *slog.Logger
}

// NewMigrator prepares a goose provider for db. The caller keeps ownership
// of db.
func NewMigrator(db *sql.DB, driver string, logger *slog.Logger) (*Migrator, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	fsys, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	provider, err := goose.NewProvider(d.goose, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return &Migrator{
		provider: provider,
		logger:   logger.With("component", "migrations", "dialect", string(d.goose)),
	}, nil
}

// Run executes a migration command.
func (m *Migrator) Run(ctx context.Context, command string) error {
	switch command {
	case MigrateUp:
		results, err := m.provider.Up(ctx)
		m.logResults(results)
		if err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	case MigrateDown:
		result, err := m.provider.Down(ctx)
		if result != nil {
			m.logResults([]*goose.MigrationResult{result})
		}
		if err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
	case MigrateReset:
		results, err := m.provider.DownTo(ctx, 0)
		m.logResults(results)
		if err != nil {
			return fmt.Errorf("failed to reset migrations: %w", err)
		}
	case MigrateStatus:
		statuses, err := m.provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}
		for _, st := range statuses {
			m.logger.InfoContext(ctx, "migration status",
				"version", st.Source.Version,
				"path", st.Source.Path,
				"state", string(st.State),
				"applied_at", st.AppliedAt)
		}
	case MigrateVersion:
		version, err := m.Version(ctx)
		if err != nil {
			return err
		}
		m.logger.InfoContext(ctx, "current schema version", "version", version)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	return nil
}

// Version returns the currently applied schema version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func (m *Migrator) logResults(results []*goose.MigrationResult) {
	for _, r := range results {
		attrs := []any{
			"version", r.Source.Version,
			"path", r.Source.Path,
			"direction", r.Direction,
			"duration_ms", r.Duration.Milliseconds(),
		}
		if r.Error != nil {
			m.logger.Error("migration failed", append(attrs, "error", r.Error)...)
			continue
		}
		m.logger.Info("migration applied", attrs...)
	}
}

// Migrate applies all pending migrations to db.
func Migrate(ctx context.Context, db *sql.DB, driver string, logger *slog.Logger) error {
	m, err := NewMigrator(db, driver, logger)
	if err != nil {
		return err
	}
	return m.Run(ctx, MigrateUp)
}
