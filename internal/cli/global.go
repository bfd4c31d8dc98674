package cli

import (
	"construction-estimator-service/internal/adapters/cadremote"
	"construction-estimator-service/internal/adapters/cadstub"
	"construction-estimator-service/internal/adapters/repositories"
	"construction-estimator-service/internal/platform/db"
	"construction-estimator-service/internal/ports"
	"construction-estimator-service/internal/services"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const memoryDB = ":memory:"

type GlobalOptions struct {
	// SQLite file keeping estimate history; in-memory when unset.
	DBPath string
	// Simulated parser time for uploads.
	UploadDelay time.Duration
	// Remote CAD parser; the stub parser is used when empty.
	ParserURL string
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		DBPath: memoryDB,
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.DBPath, "db", o.DBPath, "SQLite file for estimate history (default in-memory)")
	fs.DurationVar(&o.UploadDelay, "upload-delay", o.UploadDelay, "Simulated CAD parsing delay")
	fs.StringVar(&o.ParserURL, "parser-url", o.ParserURL, "Base URL of a remote CAD parser (default built-in stub)")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	if o.DBPath == "" {
		o.DBPath = memoryDB
	}
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if o.UploadDelay < 0 {
		return fmt.Errorf("upload-delay must not be negative")
	}
	return nil
}

// Estimator opens the history database and returns an estimator backed by it.
// The returned func closes the database.
func (o *GlobalOptions) Estimator(ctx context.Context) (*services.Estimator, func(), error) {
	if o.DBPath != memoryDB {
		if err := os.MkdirAll(filepath.Dir(o.DBPath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating db dir: %w", err)
		}
	}

	conn, err := db.Open(db.DriverSQLite, o.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.Migrate(ctx, conn, db.DriverSQLite); err != nil {
		conn.Close()
		return nil, nil, err
	}

	source, err := o.dimensionSource()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	est := services.NewEstimator(
		repositories.NewSQLEstimateRepository(conn, db.DriverSQLite),
		services.WithDimensionSource(source),
	)
	return est, func() { _ = conn.Close() }, nil
}

func (o *GlobalOptions) dimensionSource() (ports.DimensionSource, error) {
	if o.ParserURL == "" {
		return cadstub.NewStubDimensionSource(cadstub.WithDelay(o.UploadDelay)), nil
	}
	return cadremote.NewRemoteDimensionSource(o.ParserURL, os.Getenv("CAD_PARSER_API_KEY"))
}
