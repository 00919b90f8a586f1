package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the environment into a fresh [StructuredConfig]. Variable
// names come from the `env` and `envPrefix` tags, so STORAGE_DB_DSN fills
// Storage.DB.DSN. Unset variables leave zero values for the merge to skip.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
