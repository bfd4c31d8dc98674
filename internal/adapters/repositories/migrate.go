package repositories

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies all pending schema migrations for the given driver ("sqlite" or "pgx").
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migrate: DB is nil")
	}

	dialect, err := gooseDialect(driver)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrate: open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migrate: create provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate: apply migrations: %w", err)
	}

	for _, r := range results {
		zap.S().Named("migrate").Infow("applied migration",
			"version", r.Source.Version, "path", r.Source.Path, "dur", r.Duration)
	}

	return nil
}

func gooseDialect(driver string) (goose.Dialect, error) {
	switch driver {
	case "sqlite":
		return goose.DialectSQLite3, nil
	case "pgx":
		return goose.DialectPostgres, nil
	default:
		return "", fmt.Errorf("unsupported driver %q", driver)
	}
}
