package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config
// file.
type StructuredJSONConfig struct {
	App struct {
		Version        string `json:"version"`
		PreferencesKey string `json:"preferences_key"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		DB      struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Files struct {
			StateFile string `json:"state_file"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workspace struct {
		Root          string `json:"root"`
		DefaultFolder string `json:"default_folder"`
		Preview       string `json:"preview"`
	} `json:"workspace,omitempty"`

	Workers struct {
		WatchBuffer int `json:"watch_buffer"`
		EventBuffer int `json:"event_buffer"`
	} `json:"workers,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:        jsonCfg.App.Version,
			PreferencesKey: jsonCfg.App.PreferencesKey,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			DB:      DB{DSN: jsonCfg.Storage.DB.DSN},
			Files:   Files{StateFile: jsonCfg.Storage.Files.StateFile},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workspace: Workspace{
			Root:          jsonCfg.Workspace.Root,
			DefaultFolder: jsonCfg.Workspace.DefaultFolder,
			Preview:       jsonCfg.Workspace.Preview,
		},
		Workers: Workers{
			WatchBuffer: jsonCfg.Workers.WatchBuffer,
			EventBuffer: jsonCfg.Workers.EventBuffer,
		},
		Log:          Log{File: jsonCfg.Log.File},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
