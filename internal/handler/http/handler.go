package http

import (
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/internal/service"
)

// FolderWatcher is the part of the folder watcher driven by the explorer
// routes.
type FolderWatcher interface {
	Watch(folder string) error
	Unwatch()
	Folder() string
	Active() bool
}

type Handler struct {
	services *service.Services
	watcher  FolderWatcher

	logger *logger.Logger
}

func NewHandler(services *service.Services, watcher FolderWatcher, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		watcher:  watcher,
		logger:   logger,
	}
}
