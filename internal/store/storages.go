package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-docs-keeper/internal/config"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
)

// Storages groups the storage dependencies of the service layer.
type Storages struct {
	// KeyValueStorage holds user preferences.
	KeyValueStorage KeyValueStorage
}

// NewStorages opens the backend selected by cfg.Backend. For "sqlite" it
// connects to cfg.DB.DSN and runs the schema migrations first.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	var (
		kv  KeyValueStorage
		err error
	)

	switch cfg.Backend {
	case config.BackendSQLite:
		kv, err = newSQLiteStorageFromConfig(ctx, cfg.DB, logger)
	case config.BackendFile:
		kv, err = NewFileStorage(cfg.Files.StateFile)
	case config.BackendMemory:
		kv = NewMemoryStorage()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("error opening %s storage: %w", cfg.Backend, err)
	}

	return &Storages{
		KeyValueStorage: kv,
	}, nil
}

// Close releases every storage.
func (s *Storages) Close() error {
	return s.KeyValueStorage.Close()
}

func newSQLiteStorageFromConfig(ctx context.Context, cfg config.DB, logger *logger.Logger) (KeyValueStorage, error) {
	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLiteStorage(db, logger), nil
}
