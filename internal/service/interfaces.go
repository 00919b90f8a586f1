package service

import (
	"context"

	"github.com/MKhiriev/go-docs-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PreferencesService holds the user preferences of the editor.
type PreferencesService interface {
	// Get returns a copy of the current configuration.
	Get() models.Config
	// Update shallow-merges patch into the current configuration, persists
	// the result and then replaces the in-memory value.
	Update(ctx context.Context, patch models.ConfigPatch) (models.Config, error)

	Theme() string
	ShowMdToolbar() bool
	ShowAhtmlToolbar() bool
	View() models.ConfigView

	// Subscribe registers listener for every successful Update. Listeners run
	// synchronously in the updating goroutine and must not call Update.
	Subscribe(listener func(models.ConfigView)) (cancel func())
}

// ExplorerService lists and edits documents of a workspace folder.
type ExplorerService interface {
	Open(ctx context.Context, dir string) ([]models.FileTree, error)
	Read(ctx context.Context, path string) (models.DocFile, error)
	ReadMany(ctx context.Context, paths []string) ([]models.DocFile, error)
	Write(ctx context.Context, path, content string) (models.DocFile, error)
	Create(ctx context.Context, dir, name string, isDir bool) (models.DocFile, error)
	Delete(ctx context.Context, path string, isDir bool) error
	Rename(ctx context.Context, path, newName string) (string, error)
}

// WorkspaceConfigService reads and writes the per-folder workspace file.
type WorkspaceConfigService interface {
	Get(ctx context.Context, folder string) (models.WorkspaceConfig, error)
	Set(ctx context.Context, folder string, cfg models.WorkspaceConfig) error
}

// EventsService fans events out to every subscriber.
type EventsService interface {
	Publish(eventType models.EventType, data any)
	// Subscribe returns a channel of events and a cancel func closing it.
	Subscribe() (<-chan models.Event, func())
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
