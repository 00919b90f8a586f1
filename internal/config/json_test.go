package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"2s"`, string(data))
}

func TestParseJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"version": "1.2.3", "preferences_key": "prefs"},
		"storage": map[string]any{"backend": "file", "files": map[string]any{"state_file": "s.json"}},
		"adapter": map[string]any{"http_address": "http://localhost:1", "request_timeout": "3s"},
		"workers": map[string]any{"watch_buffer": 8},
		"log":     map[string]any{"file": "x.log"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "prefs", cfg.App.PreferencesKey)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "s.json", cfg.Storage.Files.StateFile)
	assert.Equal(t, "http://localhost:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 8, cfg.Workers.WatchBuffer)
	assert.Equal(t, "x.log", cfg.Log.File)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}
