package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-docs-keeper/internal/config"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/internal/store"
	"github.com/MKhiriev/go-docs-keeper/models"
)

// Services is the service layer shared by the HTTP handlers, the workers and
// the terminal client.
type Services struct {
	PreferencesService     PreferencesService
	ExplorerService        ExplorerService
	WorkspaceConfigService WorkspaceConfigService
	EventsService          EventsService
	AppInfoService         AppInfoService
}

// NewServices resolves the preferences from storage and wires the rest of
// the services. Every preference update is published as a config-changed
// event.
func NewServices(ctx context.Context, storages *store.Storages, cfg config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	preferences, err := NewPreferencesService(ctx, storages.KeyValueStorage, cfg.App.PreferencesKey, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating preferences service: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	events := NewEventsService(cfg.Workers.EventBuffer, logger)
	preferences.Subscribe(func(view models.ConfigView) {
		events.Publish(models.EventConfigChanged, view)
	})

	return &Services{
		PreferencesService:     preferences,
		ExplorerService:        NewExplorerService(cfg.Workspace, logger),
		WorkspaceConfigService: NewWorkspaceConfigService(cfg.Workspace, logger),
		EventsService:          events,
		AppInfoService:         appInfo,
	}, nil
}
