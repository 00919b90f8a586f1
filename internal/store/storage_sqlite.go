package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-docs-keeper/internal/logger"
)

// sqliteStorage is the SQLite-backed [KeyValueStorage]. All pairs live in
// the "local_storage" table.
type sqliteStorage struct {
	db     *DB
	logger *logger.Logger
	closed atomic.Bool
}

// NewSQLiteStorage constructs a [KeyValueStorage] over an already migrated
// database.
func NewSQLiteStorage(db *DB, logger *logger.Logger) KeyValueStorage {
	logger.Debug().Msg("creating sqlite key-value storage")
	return &sqliteStorage{
		db:     db,
		logger: logger,
	}
}

func (s *sqliteStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	if s.closed.Load() {
		return "", false, ErrStorageClosed
	}
	log := logger.FromContext(ctx)

	query, args, err := buildGetItemQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*sqliteStorage.GetItem").Str("key", key).Msg("failed to read item")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, true, nil
}

func (s *sqliteStorage) SetItem(ctx context.Context, key, value string) error {
	if s.closed.Load() {
		return ErrStorageClosed
	}

	query, args, err := buildSetItemQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "*sqliteStorage.SetItem", query, args...)
}

func (s *sqliteStorage) RemoveItem(ctx context.Context, key string) error {
	if s.closed.Load() {
		return ErrStorageClosed
	}

	query, args, err := buildRemoveItemQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "*sqliteStorage.RemoveItem", query, args...)
}

func (s *sqliteStorage) Keys(ctx context.Context) ([]string, error) {
	if s.closed.Load() {
		return nil, ErrStorageClosed
	}
	log := logger.FromContext(ctx)

	query, args, err := buildKeysQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqliteStorage.Keys").Msg("failed to query keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}

func (s *sqliteStorage) Clear(ctx context.Context) error {
	if s.closed.Load() {
		return ErrStorageClosed
	}

	query, args, err := buildClearQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "*sqliteStorage.Clear", query, args...)
}

func (s *sqliteStorage) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

func (s *sqliteStorage) exec(ctx context.Context, funcName, query string, args ...any) error {
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
