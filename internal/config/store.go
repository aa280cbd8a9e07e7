package config

import (
	"fmt"
	"os"

	"github.com/shibashis07/time-logger/internal/store"
	"github.com/shibashis07/time-logger/internal/store/localfile"
	"github.com/shibashis07/time-logger/internal/store/sqlite"
)

// CreateStore creates the configured activity record store. Either backend
// satisfies the same store.Store contract, so the rest of the application
// never knows which one is active.
func CreateStore(config *Config) (store.Store, error) {
	switch config.Storage.Backend {
	case BackendSQLite:
		if err := os.MkdirAll(config.Storage.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
		s, err := sqlite.New(config.GetDatabasePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return s, nil

	case BackendFile:
		s, err := localfile.New(config.GetLogFilePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize log file store: %w", err)
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", config.Storage.Backend)
	}
}

// CreateTestStore creates an in-memory SQLite store for testing
func CreateTestStore() (store.Store, error) {
	s, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return s, nil
}
