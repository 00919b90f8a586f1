// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Persisted key names of the known configuration fields.
const (
	ConfigKeyTheme        = "theme"
	ConfigKeyMdMode       = "mdMode"
	ConfigKeyMdToolbar    = "mdToolbar"
	ConfigKeyAhtmlToolbar = "ahtmlToolbar"
	ConfigKeyWatch        = "watch"
)

// MdMode identifies the markdown editor mode.
type MdMode string

const (
	// MdModeIR is instant rendering: markdown is rendered in place while typing.
	MdModeIR MdMode = "ir"
	// MdModeSV is split view: source on one side, preview on the other.
	MdModeSV MdMode = "sv"
	// MdModeWYSIWYG is the rich text mode.
	MdModeWYSIWYG MdMode = "wysiwyg"
)

// MdModes lists the editor modes in the order the UI cycles through them.
var MdModes = []MdMode{MdModeIR, MdModeSV, MdModeWYSIWYG}

// Next returns the mode following m in [MdModes]. Unknown modes restart the
// cycle.
func (m MdMode) Next() MdMode {
	i := slices.Index(MdModes, m)
	return MdModes[(i+1)%len(MdModes)]
}

// ToolbarFlags maps a toolbar button identifier to its visibility flag.
// The key set is open: identifiers unknown to this build are kept as is.
type ToolbarFlags map[string]bool

// Any reports whether at least one button is enabled.
func (f ToolbarFlags) Any() bool {
	for _, enabled := range f {
		if enabled {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of f. A nil map stays nil.
func (f ToolbarFlags) Clone() ToolbarFlags {
	if f == nil {
		return nil
	}
	return maps.Clone(f)
}

// With returns a copy of f with id set to enabled. The receiver is not
// modified, so the result can be handed to an update as a complete map.
func (f ToolbarFlags) With(id string, enabled bool) ToolbarFlags {
	next := make(ToolbarFlags, len(f)+1)
	maps.Copy(next, f)
	next[id] = enabled
	return next
}

// IDs returns the button identifiers in lexical order.
func (f ToolbarFlags) IDs() []string {
	return slices.Sorted(maps.Keys(f))
}

// Config is the user preference object of the editor.
//
// Known keys are decoded into typed fields. Every other persisted key is kept
// in Extra and written back untouched, so data written by newer or older
// builds survives a round trip.
type Config struct {
	Theme        string
	MdMode       MdMode
	MdToolbar    ToolbarFlags
	AhtmlToolbar ToolbarFlags

	// Watch is only present in some persisted revisions; nil means absent.
	Watch *bool

	Extra map[string]json.RawMessage
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	next := c
	next.MdToolbar = c.MdToolbar.Clone()
	next.AhtmlToolbar = c.AhtmlToolbar.Clone()
	if c.Watch != nil {
		watch := *c.Watch
		next.Watch = &watch
	}
	if c.Extra != nil {
		next.Extra = maps.Clone(c.Extra)
	}
	return next
}

// Merge returns a copy of c where every field set in patch replaces the
// current value. This is a one level merge: a toolbar map in the patch
// replaces the whole map, sibling flags missing from it are dropped.
func (c Config) Merge(patch ConfigPatch) Config {
	next := c.Clone()
	if patch.Theme != nil {
		next.Theme = *patch.Theme
	}
	if patch.MdMode != nil {
		next.MdMode = *patch.MdMode
	}
	if patch.MdToolbar != nil {
		next.MdToolbar = patch.MdToolbar.Clone()
	}
	if patch.AhtmlToolbar != nil {
		next.AhtmlToolbar = patch.AhtmlToolbar.Clone()
	}
	if patch.Watch != nil {
		watch := *patch.Watch
		next.Watch = &watch
	}
	return next
}

// AsPatch returns a patch that sets every known field of c.
func (c Config) AsPatch() ConfigPatch {
	theme, mode := c.Theme, c.MdMode
	patch := ConfigPatch{
		Theme:        &theme,
		MdMode:       &mode,
		MdToolbar:    c.MdToolbar.Clone(),
		AhtmlToolbar: c.AhtmlToolbar.Clone(),
	}
	if c.Watch != nil {
		watch := *c.Watch
		patch.Watch = &watch
	}
	return patch
}

// Fields returns the persisted representation of c: one raw JSON value per
// top-level key. Known fields override extra keys with the same name.
func (c Config) Fields() (map[string]json.RawMessage, error) {
	fields := make(map[string]json.RawMessage, len(c.Extra)+5)
	maps.Copy(fields, c.Extra)

	known := map[string]any{
		ConfigKeyTheme:        c.Theme,
		ConfigKeyMdMode:       c.MdMode,
		ConfigKeyMdToolbar:    c.MdToolbar,
		ConfigKeyAhtmlToolbar: c.AhtmlToolbar,
	}
	if c.Watch != nil {
		known[ConfigKeyWatch] = *c.Watch
	}
	for key, value := range known {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("error encoding config key %q: %w", key, err)
		}
		fields[key] = raw
	}

	return fields, nil
}

// ConfigFromFields decodes a persisted field set into a [Config].
// Keys that are not known fields end up in Extra. Any known key that does not
// decode fails the whole call.
func ConfigFromFields(fields map[string]json.RawMessage) (Config, error) {
	cfg, err := MergeFields(Config{}, fields)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MergeFields layers fields over base one key at a time. A known key whose
// value does not fit its type keeps the base value and is reported in the
// returned error; every other key is still applied. A JSON null resets the
// field to its zero value.
func MergeFields(base Config, fields map[string]json.RawMessage) (Config, error) {
	cfg := base.Clone()
	decoders := map[string]func(json.RawMessage) error{
		ConfigKeyTheme:        func(raw json.RawMessage) error { return decodeField(raw, &cfg.Theme) },
		ConfigKeyMdMode:       func(raw json.RawMessage) error { return decodeField(raw, &cfg.MdMode) },
		ConfigKeyMdToolbar:    func(raw json.RawMessage) error { return decodeField(raw, &cfg.MdToolbar) },
		ConfigKeyAhtmlToolbar: func(raw json.RawMessage) error { return decodeField(raw, &cfg.AhtmlToolbar) },
		ConfigKeyWatch:        func(raw json.RawMessage) error { return decodeField(raw, &cfg.Watch) },
	}

	var errs []error
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		raw := fields[key]
		decode, known := decoders[key]
		if !known {
			if cfg.Extra == nil {
				cfg.Extra = make(map[string]json.RawMessage)
			}
			cfg.Extra[key] = raw
			continue
		}
		if err := decode(raw); err != nil {
			errs = append(errs, fmt.Errorf("error decoding config key %q: %w", key, err))
		}
	}

	return cfg, errors.Join(errs...)
}

// decodeField decodes raw into a fresh value so a failed or partial decode
// never touches dst, and maps are replaced rather than merged into.
func decodeField[T any](raw json.RawMessage, dst *T) error {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*dst = v
	return nil
}

// MarshalJSON encodes c as a flat JSON object with sorted keys.
func (c Config) MarshalJSON() ([]byte, error) {
	fields, err := c.Fields()
	if err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// UnmarshalJSON decodes a flat JSON object into c.
func (c *Config) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	cfg, err := ConfigFromFields(fields)
	if err != nil {
		return err
	}

	*c = cfg
	return nil
}
