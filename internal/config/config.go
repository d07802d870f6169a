package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the daybook runtime configuration. Environment variables are
// parsed from the DAYBOOK_ prefix, e.g. DAYBOOK_STORE_BACKEND=snapshot.
type Config struct {
	// StoreBackend selects the persistence representation: "snapshot"
	// (whole-file artifact), "sqlite" or "postgres" (normalized store).
	StoreBackend string `envconfig:"STORE_BACKEND" default:"sqlite"`

	// SnapshotPath is the snapshot artifact location (snapshot backend).
	SnapshotPath string `envconfig:"SNAPSHOT_PATH" default:"data/daybook.diary"`

	// SQLitePath is the database file location (sqlite backend).
	SQLitePath string `envconfig:"SQLITE_PATH" default:"data/daybook.db"`

	// PostgresDSN is required for the postgres backend.
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Owner is the default owner key the CLI acts for.
	Owner string `envconfig:"OWNER" default:""`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// ResolveDefaults validates the backend selection and its required settings.
func (c *Config) ResolveDefaults() error {
	switch c.StoreBackend {
	case "snapshot", "sqlite":
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres backend needs DAYBOOK_POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("unsupported STORE_BACKEND: %s", c.StoreBackend)
	}
	return nil
}

// New creates a Config from environment variables prefixed with DAYBOOK_.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("DAYBOOK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("store_backend", cfg.StoreBackend).
		Str("snapshot_path", cfg.SnapshotPath).
		Str("sqlite_path", cfg.SQLitePath).
		Bool("postgres_dsn_present", cfg.PostgresDSN != "").
		Msg("configuration loaded")

	return &cfg, nil
}
