// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/gorilla/websocket"
)

// Keepalive of the event stream. pongWait must exceed pingInterval so an idle
// but healthy connection is never dropped.
const (
	pingInterval = 25 * time.Second
	pongWait     = 35 * time.Second
	writeWait    = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: allowedOrigin,
}

// allowedOrigin accepts clients without an Origin header, pages served from
// this API and loopback origins of the local editor. Any other web page the
// user visits is refused.
func allowedOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}

	host := strings.ToLower(u.Hostname())
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// streamEvents upgrades the request to a websocket and pushes every event of
// the events service as a JSON text message until either side goes away.
// Messages sent by the client are ignored.
func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// subscribe first so nothing published after the handshake is missed
	events, cancel := h.services.EventsService.Subscribe()
	defer cancel()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered with an HTTP error
		log.Err(err).Str("func", "*Handler.streamEvents").Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	log.Info().Str("remote", r.RemoteAddr).Msg("event stream connected")

	closed := make(chan struct{})
	go readUntilClosed(conn, closed, log)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			log.Info().Str("remote", r.RemoteAddr).Msg("event stream disconnected")
			return
		case event, ok := <-events:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err = conn.WriteJSON(event); err != nil {
				log.Err(err).Str("func", "*Handler.streamEvents").Str("event_id", event.ID).Msg("error writing event")
				return
			}
		case <-ticker.C:
			if err = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Debug().Err(err).Msg("ping failed")
				return
			}
		}
	}
}

// readUntilClosed drains the connection so control frames are processed and
// closes done once reading fails.
func readUntilClosed(conn *websocket.Conn, done chan<- struct{}, log *logger.Logger) {
	defer close(done)

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !isExpectedClose(err) {
				log.Warn().Err(err).Msg("event stream read error")
			}
			return
		}
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			return
		}
	}
}

func isExpectedClose(err error) bool {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return closeErr.Code == websocket.CloseNormalClosure ||
			closeErr.Code == websocket.CloseGoingAway ||
			closeErr.Code == websocket.CloseNoStatusReceived
	}
	return false
}
