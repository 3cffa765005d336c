package backend

import (
	"fmt"
	"log/slog"

	"lifedash/internal/storage"
	"lifedash/internal/store"
)

// Open creates the medium described by the config. The returned cleanup
// function may be nil when the medium holds no resources.
func Open(cfg Config, logger *slog.Logger) (store.Medium, CleanupFunc, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	switch cfg.Type {
	case SQLite:
		medium, err := storage.NewSQLiteMedium(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize sqlite medium: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return medium, medium.Close, nil

	case File:
		medium := storage.NewFileMedium(cfg.DataFilePath)
		logger.Info("Initialized file backend", "data_file", cfg.DataFilePath)
		return medium, nil, nil

	case Memory:
		logger.Info("Initialized memory backend")
		return storage.NewMemoryMedium(), nil, nil

	default:
		return nil, nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}
