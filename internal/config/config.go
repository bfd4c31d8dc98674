package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

type Config struct {
	Service  ServiceConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Parser   ParserConfig
}

type ServiceConfig struct {
	Port           string   `envconfig:"PORT" default:"8080"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat      string   `envconfig:"LOG_FORMAT" default:"json"`
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	MaxUploadBytes int64    `envconfig:"MAX_UPLOAD_BYTES" default:"104857600"`
	// Artificial processing delay of the stub CAD parser.
	UploadDelay time.Duration `envconfig:"UPLOAD_DELAY" default:"0s"`
}

type DatabaseConfig struct {
	Driver string `envconfig:"DB_DRIVER" default:"sqlite"`
	// SQLite file path, used when Driver is sqlite.
	Path string `envconfig:"DB_PATH" default:"data/estimates.db"`
	// Postgres connection string, used when Driver is pgx.
	URL string `envconfig:"DATABASE_URL" default:""`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"24h"`
}

// ParserConfig points uploads at a remote CAD parsing service.
// An empty URL selects the built-in stub parser.
type ParserConfig struct {
	URL     string        `envconfig:"CAD_PARSER_URL" default:""`
	APIKey  string        `envconfig:"CAD_PARSER_API_KEY" default:""`
	Timeout time.Duration `envconfig:"CAD_PARSER_TIMEOUT" default:"30s"`
}

// DSN returns the data source name for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	return d.URL
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		zap.S().Debug("No .env file found (using environment variables)")
	}

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
