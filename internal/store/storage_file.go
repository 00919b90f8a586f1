// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// fileStorage keeps every pair in memory and rewrites one JSON object file
// on each mutation.
type fileStorage struct {
	path string

	mu     sync.RWMutex
	items  map[string]string
	closed bool
}

// NewFileStorage opens the JSON state file at path. A missing file is an
// empty storage; it is created on the first write.
func NewFileStorage(path string) (KeyValueStorage, error) {
	s := &fileStorage{
		path:  path,
		items: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, ErrStorageClosed
	}
	value, ok := s.items[key]
	return value, ok, nil
}

func (s *fileStorage) SetItem(_ context.Context, key, value string) error {
	return s.mutate(func(items map[string]string) {
		items[key] = value
	})
}

func (s *fileStorage) RemoveItem(_ context.Context, key string) error {
	return s.mutate(func(items map[string]string) {
		delete(items, key)
	})
}

func (s *fileStorage) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStorageClosed
	}
	return slices.Sorted(maps.Keys(s.items)), nil
}

func (s *fileStorage) Clear(_ context.Context) error {
	return s.mutate(func(items map[string]string) {
		clear(items)
	})
}

func (s *fileStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// mutate applies fn to a copy of the items and swaps it in only after the
// file was written.
func (s *fileStorage) mutate(fn func(items map[string]string)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}

	next := maps.Clone(s.items)
	fn(next)
	if err := s.persist(next); err != nil {
		return err
	}
	s.items = next

	return nil
}

func (s *fileStorage) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var items map[string]string
	if err = json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}
	if items != nil {
		s.items = items
	}

	return nil
}

func (s *fileStorage) persist(items map[string]string) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}

	return nil
}
