package main

import (
	"construction-estimator-service/internal/adapters/cache"
	"construction-estimator-service/internal/adapters/cadremote"
	"construction-estimator-service/internal/adapters/cadstub"
	"construction-estimator-service/internal/adapters/repositories"
	"construction-estimator-service/internal/api"
	"construction-estimator-service/internal/config"
	"construction-estimator-service/internal/platform/db"
	applog "construction-estimator-service/internal/platform/log"
	"construction-estimator-service/internal/ports"
	"construction-estimator-service/internal/services"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Redis, CAD parser) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applog.New(cfg.Service.LogLevel, cfg.Service.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		zap.S().Named("server").Fatalw("server stopped", "error", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	conn, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	estimateCache, closeCache, err := newEstimateCache(ctx, cfg, conn)
	if err != nil {
		return err
	}
	defer closeCache()

	source, err := newDimensionSource(cfg)
	if err != nil {
		return err
	}

	estimator := services.NewEstimator(
		repositories.NewSQLEstimateRepository(conn, cfg.Database.Driver),
		services.WithCache(estimateCache),
		services.WithDimensionSource(source),
	)

	router := api.NewRouter(api.RouterConfig{
		Estimator:      estimator,
		AllowedOrigins: cfg.Service.AllowedOrigins,
		MaxUploadBytes: cfg.Service.MaxUploadBytes,
		Ping:           conn.PingContext,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Service.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.S().Named("server").Infow("server listening", "addr", srv.Addr, "db_driver", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		zap.S().Named("server").Infof("Shutdown signal received: %s", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	zap.S().Named("server").Info("server terminated")
	return nil
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	if cfg.Driver == db.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("open database: create data dir: %w", err)
		}
	}

	conn, err := db.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := repositories.Migrate(ctx, conn, cfg.Driver); err != nil {
		conn.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}

	return conn, nil
}

// newDimensionSource uses the remote CAD parser when CAD_PARSER_URL is set
// and the stub parser otherwise.
func newDimensionSource(cfg *config.Config) (ports.DimensionSource, error) {
	if cfg.Parser.URL == "" {
		zap.S().Named("server").Infow("using stub CAD parser", "delay", cfg.Service.UploadDelay)
		return cadstub.NewStubDimensionSource(cadstub.WithDelay(cfg.Service.UploadDelay)), nil
	}

	src, err := cadremote.NewRemoteDimensionSource(
		cfg.Parser.URL,
		cfg.Parser.APIKey,
		cadremote.WithHTTPClient(&http.Client{Timeout: cfg.Parser.Timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("init cad parser: %w", err)
	}

	zap.S().Named("server").Infow("using remote CAD parser", "url", cfg.Parser.URL, "timeout", cfg.Parser.Timeout)
	return src, nil
}

// newEstimateCache prefers Redis when REDIS_ADDR is set and falls back to the
// estimate_cache table otherwise.
func newEstimateCache(ctx context.Context, cfg *config.Config, conn *sql.DB) (ports.EstimateCache, func(), error) {
	if cfg.Redis.Addr == "" {
		zap.S().Named("server").Infow("using SQL estimate cache", "ttl", cfg.Redis.CacheTTL)
		return cache.NewSQLEstimateCache(conn, cfg.Database.Driver, cfg.Redis.CacheTTL), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
	}

	zap.S().Named("server").Infow("using redis estimate cache", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	return cache.NewRedisEstimateCache(client, cfg.Redis.CacheTTL), func() { _ = client.Close() }, nil
}
