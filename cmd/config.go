package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

type Config struct {
	HTTPPort      string `env:"HTTP_PORT"      envDefault:"8080"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`

	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"logistics.db"`

	// RedisAddr enables the status cache when set.
	RedisAddr      string        `env:"REDIS_ADDR"`
	StatusCacheTTL time.Duration `env:"STATUS_CACHE_TTL" envDefault:"5m"`

	PickupRequireWaybill bool `env:"PICKUP_REQUIRE_WAYBILL" envDefault:"true"`

	// Cron expressions with a seconds field; empty disables the job.
	SettlementReportSchedule string        `env:"SETTLEMENT_REPORT_SCHEDULE" envDefault:"0 0 6 * * *"`
	OverdueReportSchedule    string        `env:"OVERDUE_REPORT_SCHEDULE"    envDefault:"0 0 * * * *"`
	OverdueAfter             time.Duration `env:"OVERDUE_AFTER"              envDefault:"72h"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the configuration from the process environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.StorageDriver {
	case StoragePostgres:
		if c.DBName == "" {
			errs = append(errs, errors.New("DB_NAME is required for the postgres storage driver"))
		}
	case StorageSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite storage driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER %q is not one of postgres, sqlite", c.StorageDriver))
	}

	if c.RedisAddr != "" && c.StatusCacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("STATUS_CACHE_TTL must be positive, got %s", c.StatusCacheTTL))
	}
	if c.OverdueReportSchedule != "" && c.OverdueAfter <= 0 {
		errs = append(errs, fmt.Errorf("OVERDUE_AFTER must be positive, got %s", c.OverdueAfter))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// PostgresDSN builds the libpq connection string understood by both pgx and lib/pq.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
