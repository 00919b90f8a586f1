// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ConfigPatch is a partial [Config]: every field is optional.
//
// Scalars are unset when nil. Toolbar maps are unset when nil; any non-nil
// map, even an empty one, replaces the current map as a whole.
type ConfigPatch struct {
	Theme        *string      `json:"theme"`
	MdMode       *MdMode      `json:"mdMode"`
	MdToolbar    ToolbarFlags `json:"mdToolbar"`
	AhtmlToolbar ToolbarFlags `json:"ahtmlToolbar"`
	Watch        *bool        `json:"watch"`
}

// IsEmpty reports whether p sets no field at all.
func (p ConfigPatch) IsEmpty() bool {
	return p.Theme == nil &&
		p.MdMode == nil &&
		p.MdToolbar == nil &&
		p.AhtmlToolbar == nil &&
		p.Watch == nil
}

// MarshalJSON writes only the fields that are set. An empty but non-nil
// toolbar map is written as {} so it still clears the map on the other side.
func (p ConfigPatch) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, 5)
	if p.Theme != nil {
		fields[ConfigKeyTheme] = *p.Theme
	}
	if p.MdMode != nil {
		fields[ConfigKeyMdMode] = *p.MdMode
	}
	if p.MdToolbar != nil {
		fields[ConfigKeyMdToolbar] = p.MdToolbar
	}
	if p.AhtmlToolbar != nil {
		fields[ConfigKeyAhtmlToolbar] = p.AhtmlToolbar
	}
	if p.Watch != nil {
		fields[ConfigKeyWatch] = *p.Watch
	}
	return json.Marshal(fields)
}
