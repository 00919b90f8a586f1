// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/internal/store"
	"github.com/MKhiriev/go-docs-keeper/models"
)

// DefaultPreferencesKey is the storage key of the preference blob.
const DefaultPreferencesKey = "config"

// DefaultConfig returns the built-in preferences. Every call returns fresh
// maps.
func DefaultConfig() models.Config {
	return models.Config{
		Theme:  models.DefaultTheme,
		MdMode: models.MdModeWYSIWYG,
		MdToolbar: models.ToolbarFlags{
			"headings":     false,
			"bold":         false,
			"italic":       false,
			"strike":       false,
			"link":         false,
			"list":         false,
			"ordered-list": false,
			"check":        false,
			"quote":        false,
			"line":         false,
			"code":         false,
			"inline-code":  false,
			"table":        false,
			"undo":         false,
			"redo":         false,
		},
		AhtmlToolbar: models.ToolbarFlags{
			"bold":      true,
			"italic":    true,
			"underline": true,
			"heading":   true,
			"list":      true,
			"link":      true,
			"strike":    false,
			"color":     false,
			"align":     false,
			"image":     false,
			"table":     false,
			"code":      false,
			"undo":      false,
			"redo":      false,
		},
	}
}

// preferencesService keeps the resolved configuration behind an atomic
// pointer. Readers load it without locking; writers hold mu for the whole
// read-merge-persist-swap sequence.
type preferencesService struct {
	storage store.KeyValueStorage
	key     string
	logger  *logger.Logger

	current   atomic.Pointer[models.Config]
	mu        sync.Mutex
	listeners ConfigListeners
}

// NewPreferencesService resolves the persisted preferences stored under key:
// defaults when absent or malformed, otherwise the persisted keys over the
// defaults. The resolved object is written back before it is returned.
func NewPreferencesService(ctx context.Context, storage store.KeyValueStorage, key string, logger *logger.Logger) (PreferencesService, error) {
	if key == "" {
		key = DefaultPreferencesKey
	}

	s := &preferencesService{
		storage: storage,
		key:     key,
		logger:  logger,
	}

	blob, ok, err := storage.GetItem(ctx, key)
	if err != nil {
		logger.Err(err).Str("func", "NewPreferencesService").Str("key", key).Msg("error reading persisted config")
		return nil, fmt.Errorf("error reading persisted config: %w", err)
	}

	cfg := DefaultConfig()
	if ok {
		cfg = s.resolve(blob)
	}

	if err := s.persist(ctx, cfg); err != nil {
		return nil, err
	}
	s.current.Store(&cfg)

	logger.Debug().Str("func", "NewPreferencesService").Str("key", key).Bool("persisted", ok).Msg("preferences resolved")
	return s, nil
}

// resolve layers the parsed keys over the defaults. A blob that is not a
// JSON object is logged and replaced by the defaults. A known key holding a
// value of the wrong type is logged and keeps its default while the other
// keys still apply.
func (s *preferencesService) resolve(blob string) models.Config {
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &parsed); err != nil {
		s.logger.Err(fmt.Errorf("%w: %w", ErrMalformedPersistedConfig, err)).
			Str("func", "*preferencesService.resolve").Str("key", s.key).
			Msg("persisted config ignored, using defaults")
		return DefaultConfig()
	}

	cfg, err := models.MergeFields(DefaultConfig(), parsed)
	if err != nil {
		s.logger.Err(fmt.Errorf("%w: %w", ErrMalformedPersistedConfig, err)).
			Str("func", "*preferencesService.resolve").Str("key", s.key).
			Msg("persisted config keys ignored, using their defaults")
	}
	return cfg
}

func (s *preferencesService) persist(ctx context.Context, cfg models.Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := s.storage.SetItem(ctx, s.key, string(data)); err != nil {
		s.logger.Err(err).Str("func", "*preferencesService.persist").Str("key", s.key).Msg("error writing config")
		return fmt.Errorf("error writing config: %w", err)
	}
	return nil
}

func (s *preferencesService) Get() models.Config {
	return s.current.Load().Clone()
}

func (s *preferencesService) Update(ctx context.Context, patch models.ConfigPatch) (models.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Load().Merge(patch)
	if err := s.persist(ctx, next); err != nil {
		return models.Config{}, err
	}
	s.current.Store(&next)

	logger.FromContext(ctx).Debug().Str("func", "*preferencesService.Update").Msg("config updated")
	s.listeners.Notify(next)

	return next.Clone(), nil
}

func (s *preferencesService) Theme() string {
	return s.current.Load().ThemeOrDefault()
}

func (s *preferencesService) ShowMdToolbar() bool {
	return s.current.Load().MdToolbar.Any()
}

func (s *preferencesService) ShowAhtmlToolbar() bool {
	return s.current.Load().AhtmlToolbar.Any()
}

func (s *preferencesService) View() models.ConfigView {
	return models.NewConfigView(*s.current.Load())
}

func (s *preferencesService) Subscribe(listener func(models.ConfigView)) func() {
	return s.listeners.Subscribe(listener)
}
