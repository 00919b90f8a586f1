package config

import (
	"fmt"
)

// ServerConfig is the subset of [StructuredConfig] used by the HTTP server.
type ServerConfig struct {
	App       App
	Storage   Storage
	Server    Server
	Workspace Workspace
	Workers   Workers
}

// ClientConfig is the subset of [StructuredConfig] used by the terminal
// client.
type ClientConfig struct {
	App       App
	Storage   Storage
	Adapter   Adapter
	Workspace Workspace
	Workers   Workers
	Log       Log
}

// GetServerConfig builds and validates the server view of the configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:       cfg.App,
		Storage:   cfg.Storage,
		Server:    cfg.Server,
		Workspace: cfg.Workspace,
		Workers:   cfg.Workers,
	}

	return serverCfg, serverCfg.validate()
}

// GetClientConfig builds and validates the client view of the configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:       cfg.App,
		Storage:   cfg.Storage,
		Adapter:   cfg.Adapter,
		Workspace: cfg.Workspace,
		Workers:   cfg.Workers,
		Log:       cfg.Log,
	}

	return clientCfg, clientCfg.validate()
}
