package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-docs-keeper/internal/config"
	"github.com/MKhiriev/go-docs-keeper/internal/handler"
	myHTTP "github.com/MKhiriev/go-docs-keeper/internal/handler/http"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/internal/service"
	"github.com/MKhiriev/go-docs-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()

	appInfo, err := service.NewAppInfoService(config.App{Version: "test"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{AppInfoService: appInfo}, nil, logger.Nop()),
	}
}

func TestNewServer_NoServers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", cfg: config.Server{HTTPAddress: "localhost:0"}},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: "localhost:0"}},
		{name: "no address", handlers: newTestHandlers(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			assert.ErrorIs(t, err, errNoHTTPServer)
			assert.Nil(t, srv)
		})
	}
}

func TestRunServer_ServesUntilCanceled(t *testing.T) {
	srv, err := NewServer(newTestHandlers(t), config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	require.Eventually(t, func() bool { return s.httpServer.addr() != "" }, 5*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + s.httpServer.addr() + "/api/version")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunServer_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv, err := NewServer(newTestHandlers(t), config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	err = srv.RunServer(context.Background())
	assert.Error(t, err)
}
