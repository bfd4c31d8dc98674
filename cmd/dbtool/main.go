package main

import (
	"construction-estimator-service/internal/adapters/repositories"
	"construction-estimator-service/internal/config"
	"construction-estimator-service/internal/platform/db"
	applog "construction-estimator-service/internal/platform/log"
	"construction-estimator-service/internal/services"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// dbtool applies schema migrations and loads the demo projects.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applog.New(cfg.Service.LogLevel, "console")
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	seedPath := config.Get("SEED_PATH", "data/seeds/projects.json")
	if err := migrateAndSeed(context.Background(), cfg.Database, seedPath); err != nil {
		zap.S().Named("dbtool").Fatalw("dbtool failed", "error", err)
	}
}

func migrateAndSeed(ctx context.Context, cfg config.DatabaseConfig, seedPath string) error {
	if cfg.Driver == db.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return fmt.Errorf("migrate and seed: create data dir: %w", err)
		}
	}

	conn, err := db.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return fmt.Errorf("migrate and seed: %w", err)
	}
	defer conn.Close()

	log := zap.S().Named("dbtool")

	log.Info("Applying migrations...")
	if err := repositories.Migrate(ctx, conn, cfg.Driver); err != nil {
		return fmt.Errorf("migrate and seed: %w", err)
	}
	log.Info("Schema ready.")

	reqs, err := loadSeed(seedPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Infow("No seed file, skipping", "path", seedPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate and seed: %w", err)
	}

	estimator := services.NewEstimator(repositories.NewSQLEstimateRepository(conn, cfg.Driver))

	existing, err := estimator.ListEstimates(ctx, 1)
	if err != nil {
		return fmt.Errorf("migrate and seed: %w", err)
	}
	if len(existing) > 0 {
		log.Info("Estimates already present, skipping seed.")
		return nil
	}

	log.Infow("Seeding database...", "projects", len(reqs))
	if _, err := estimator.EstimateBatch(ctx, reqs, services.DefaultBatchConcurrency); err != nil {
		return fmt.Errorf("migrate and seed: %w", err)
	}
	log.Info("Seeding complete.")

	return nil
}
