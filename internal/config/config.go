// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage backends accepted by [Storage.Backend].
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the local key-value storage backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings of the editor backend.
	Server Server `envPrefix:"SERVER_"`

	// Adapter points the terminal client at a running server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workspace restricts and seeds the file explorer.
	Workspace Workspace `envPrefix:"WORKSPACE_"`

	// Workers holds buffer sizes of the background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log output settings of the terminal client.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by /api/version when no build version was linked in.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// PreferencesKey is the storage key holding the user preference blob.
	// Env: APP_PREFERENCES_KEY
	PreferencesKey string `env:"PREFERENCES_KEY"`
}

// Storage groups the settings of the local key-value storage.
type Storage struct {
	// Backend is one of "sqlite", "file" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds the SQLite settings used by the "sqlite" backend.
	DB DB `envPrefix:"DB_"`

	// Files holds the settings used by the "file" backend.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the SQLite database file path or DSN.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds settings for the JSON file backend.
type Files struct {
	// StateFile is the JSON file holding all key-value pairs.
	// Env: STORAGE_FILES_STATE_FILE
	StateFile string `env:"STATE_FILE"`
}

// Server holds network and timeout settings for the HTTP API.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request. The websocket
	// event stream is exempt.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the settings of the terminal client's HTTP adapter.
type Adapter struct {
	// HTTPAddress is the base address of a running server. When empty the
	// client opens local storage directly.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workspace holds file explorer settings.
type Workspace struct {
	// Root confines every explorer path when non-empty.
	// Env: WORKSPACE_ROOT
	Root string `env:"ROOT"`

	// DefaultFolder is watched on startup when non-empty.
	// Env: WORKSPACE_DEFAULT_FOLDER
	DefaultFolder string `env:"DEFAULT_FOLDER"`

	// Preview is the document opened by the preview screen of the terminal
	// client.
	// Env: WORKSPACE_PREVIEW
	Preview string `env:"PREVIEW"`
}

// Workers holds background worker settings.
type Workers struct {
	// WatchBuffer is the capacity of the file watcher event channel.
	// Env: WORKERS_WATCH_BUFFER
	WatchBuffer int `env:"WATCH_BUFFER"`

	// EventBuffer is the per-subscriber capacity of the event hub.
	// Env: WORKERS_EVENT_BUFFER
	EventBuffer int `env:"EVENT_BUFFER"`
}

// Log holds log output settings.
type Log struct {
	// File is the log file of the terminal client.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
