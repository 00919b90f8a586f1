package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "port not a number", input: "localhost:http", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-r", "15s",
		"-remote", "http://127.0.0.1:9000",
		"-storage", "file",
		"-d", "docs.db",
		"-f", "state.json",
		"-root", "/work",
		"-folder", "/work/notes",
		"-preview", "/work/notes/readme.md",
		"-preferences-key", "prefs",
		"-log-file", "client.log",
		"-config", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "docs.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "state.json", cfg.Storage.Files.StateFile)
	assert.Equal(t, "/work", cfg.Workspace.Root)
	assert.Equal(t, "/work/notes", cfg.Workspace.DefaultFolder)
	assert.Equal(t, "/work/notes/readme.md", cfg.Workspace.Preview)
	assert.Equal(t, "prefs", cfg.App.PreferencesKey)
	assert.Equal(t, "client.log", cfg.Log.File)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nohost"})
	assert.Error(t, err)
}
