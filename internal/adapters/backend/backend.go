// Package backend opens the key-value store selected by configuration
package backend

import (
	"fmt"

	"go.uber.org/zap"

	"tally/internal/adapters/filesystem"
	"tally/internal/adapters/memory"
	"tally/internal/adapters/sqlite"
	"tally/internal/config"
	"tally/internal/ports"
)

// Open returns the KeyValueStore named by cfg.Store, rooted in cfg.DataDir
func Open(cfg *config.Config, logger *zap.Logger) (ports.KeyValueStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Store {
	case config.StoreSQLite:
		return sqlite.Open(sqlite.DefaultPath(cfg.DataDir), logger.Named("sqlite"))
	case config.StoreFile:
		return filesystem.Open(filesystem.DefaultPath(cfg.DataDir), logger.Named("file"))
	case config.StoreMemory:
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// Location describes where cfg keeps its data, for display
func Location(cfg *config.Config) string {
	switch cfg.Store {
	case config.StoreSQLite:
		return sqlite.DefaultPath(cfg.DataDir)
	case config.StoreFile:
		return filesystem.DefaultPath(cfg.DataDir)
	default:
		return "(in memory)"
	}
}
