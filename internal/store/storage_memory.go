package store

import (
	"context"
	"maps"
	"slices"
	"sync"
)

type memoryStorage struct {
	mu     sync.RWMutex
	items  map[string]string
	closed bool
}

// NewMemoryStorage returns a process-local [KeyValueStorage]. Its contents
// are lost on exit.
func NewMemoryStorage() KeyValueStorage {
	return &memoryStorage{items: make(map[string]string)}
}

func (s *memoryStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, ErrStorageClosed
	}
	value, ok := s.items[key]
	return value, ok, nil
}

func (s *memoryStorage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}
	s.items[key] = value
	return nil
}

func (s *memoryStorage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}
	delete(s.items, key)
	return nil
}

func (s *memoryStorage) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStorageClosed
	}
	return slices.Sorted(maps.Keys(s.items)), nil
}

func (s *memoryStorage) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}
	clear(s.items)
	return nil
}

func (s *memoryStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
