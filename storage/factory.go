package storage

import (
	"context"
	"fmt"

	"github.com/kylycht/hoststats/storage/memory"
	"github.com/kylycht/hoststats/storage/persistence"
	"github.com/rs/zerolog/log"
)

// Config controls how the preference backend is opened.
type Config struct {
	Driver string // memory, sqlite or postgres
	DSN    string // driver specific connection string
}

// Open constructs Preferences based on the given configuration.
func Open(ctx context.Context, cfg Config) (Preferences, error) {
	drv := cfg.Driver
	if drv == "" {
		drv = persistence.DriverSQLite
	}

	switch drv {
	case "memory":
		log.Info().Msg("storage: using in-memory preferences")
		return memory.New(), nil

	case persistence.DriverSQLite, persistence.DriverPostgres:
		log.Info().Str("driver", drv).Msg("storage: using sql preferences")
		p, err := persistence.Open(ctx, drv, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("storage open: %w", err)
		}
		return p, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", drv)
	}
}
