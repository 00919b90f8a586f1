package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-docs-keeper/internal/adapter"
	"github.com/MKhiriev/go-docs-keeper/internal/config"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/internal/service"
	"github.com/MKhiriev/go-docs-keeper/internal/store"
	"github.com/MKhiriev/go-docs-keeper/internal/tui"
	"github.com/MKhiriev/go-docs-keeper/internal/workers"
	"github.com/MKhiriev/go-docs-keeper/models"
)

type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run opens the preferences and shows the settings screen. Background
// workers and storage are released when the screen is closed.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	backend, err := a.openBackend(ctx)
	if err != nil {
		return err
	}
	defer backend.close()

	backend.workers.Run(ctx)
	defer backend.workers.Wait()
	defer cancel()

	documents := service.NewExplorerService(a.cfg.Workspace, a.logger)
	ui := tui.New(backend.preferences, documents, a.buildInfo, a.logger)

	return ui.Run(ctx, a.cfg.Workspace.Preview)
}

type backend struct {
	preferences service.PreferencesService
	workers     *workers.Workers
	close       func()
}

// openBackend talks to the server when an adapter address is configured and
// opens local storage otherwise.
func (a *App) openBackend(ctx context.Context) (*backend, error) {
	if a.cfg.Adapter.HTTPAddress != "" {
		return a.openRemote(ctx)
	}
	return a.openLocal(ctx)
}

func (a *App) openRemote(ctx context.Context) (*backend, error) {
	log := a.logger.GetChildLogger()
	log.Info().Str("address", a.cfg.Adapter.HTTPAddress).Msg("using remote preferences")

	remote, err := adapter.NewHTTPPreferencesAdapter(ctx, a.cfg.Adapter, a.logger)
	if err != nil {
		return nil, fmt.Errorf("connect to server: %w", err)
	}

	if info, err := remote.Version(ctx); err == nil {
		log.Info().Str("server_version", info.Version).Str("server_commit", info.Commit).Msg("connected to server")
	} else {
		log.Warn().Err(err).Msg("server version is unknown")
	}

	return &backend{
		preferences: remote,
		workers:     workers.NewWorkers(remote.NewEventListener()),
		close:       func() {},
	}, nil
}

func (a *App) openLocal(ctx context.Context) (*backend, error) {
	a.logger.Info().Str("backend", a.cfg.Storage.Backend).Msg("using local preferences")

	storages, err := store.NewStorages(ctx, a.cfg.Storage, a.logger)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}

	preferences, err := service.NewPreferencesService(ctx, storages.KeyValueStorage, a.cfg.App.PreferencesKey, a.logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	return &backend{
		preferences: preferences,
		workers:     workers.NewWorkers(),
		close: func() {
			if err := storages.Close(); err != nil {
				a.logger.Err(err).Msg("error closing storage")
			}
		},
	}, nil
}
