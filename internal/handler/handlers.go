package handler

import (
	"github.com/MKhiriev/go-docs-keeper/internal/config"
	"github.com/MKhiriev/go-docs-keeper/internal/handler/http"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, watcher http.FolderWatcher, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPHandler
	}

	return &Handlers{
		HTTP: http.NewHandler(services, watcher, logger),
	}, nil
}
