package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/storage_mock.go -package=mock

// KeyValueStorage is a local string key-value store, the device-local
// persistence used for user preferences.
type KeyValueStorage interface {
	// GetItem returns the value stored under key. ok is false when the key
	// is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
	// Keys returns all stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
	// Clear deletes every key.
	Clear(ctx context.Context) error
	// Close releases the backend. Every later call returns [ErrStorageClosed].
	Close() error
}
