// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EventType names a notification pushed to the editor.
type EventType string

const (
	// EventConfigChanged carries a [ConfigView] after every preference update.
	EventConfigChanged EventType = "config-changed"

	// EventFileSystemChanged carries an [FSEvent] from the folder watcher.
	EventFileSystemChanged EventType = "file-system-changed"
)

// Event is a single notification on the event stream.
type Event struct {
	ID   string    `json:"id"`
	Type EventType `json:"type"`
	Data any       `json:"data"`
}
