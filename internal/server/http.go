package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-docs-keeper/internal/config"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger

	mu       sync.Mutex
	listener net.Listener
}

// newHTTPServer applies the request timeout to reading and writing. The
// websocket upgrader clears these deadlines on the hijacked connection.
func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// listen binds the address so a busy port is reported before serving.
func (h *httpServer) listen() error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.listener = ln
	h.mu.Unlock()
	return nil
}

// addr is the bound address, useful when the port was 0.
func (h *httpServer) addr() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listener == nil {
		return ""
	}
	return h.listener.Addr().String()
}

func (h *httpServer) RunServer() {
	h.mu.Lock()
	ln := h.listener
	h.mu.Unlock()

	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("func", "*httpServer.RunServer").Msg("HTTP server Serve")
	}
}

func (h *httpServer) Shutdown(ctx context.Context) {
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.Shutdown").Msg("HTTP server Shutdown")
	}
}
