// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

func (cfg *ServerConfig) validate() error {
	if err := validateApp(cfg.App); err != nil {
		return err
	}
	if err := validateStorage(cfg.Storage); err != nil {
		return err
	}
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateApp(cfg.App); err != nil {
		return err
	}

	// remote mode does not open local storage
	if cfg.Adapter.HTTPAddress != "" {
		if cfg.Adapter.RequestTimeout <= 0 {
			return ErrInvalidAdapterConfigs
		}
		return nil
	}

	return validateStorage(cfg.Storage)
}

func validateApp(app App) error {
	if app.PreferencesKey == "" {
		return ErrInvalidAppConfigs
	}
	return nil
}

func validateStorage(storage Storage) error {
	switch storage.Backend {
	case BackendSQLite:
		if storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendFile:
		if storage.Files.StateFile == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendMemory:
	default:
		return ErrInvalidStorageConfigs
	}

	return nil
}
