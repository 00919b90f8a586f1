// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/models"
	"github.com/gorilla/websocket"
)

const defaultRetryDelay = 2 * time.Second

// EventListener follows the server event stream and applies preference
// changes made by other clients to the adapter. After a lost connection it
// reconnects and fetches the configuration again.
type EventListener struct {
	adapter    *HTTPPreferencesAdapter
	dialer     *websocket.Dialer
	retryDelay time.Duration
	logger     *logger.Logger

	done chan struct{}
}

// NewEventListener returns a worker bound to a. It does nothing until Run.
func (a *HTTPPreferencesAdapter) NewEventListener() *EventListener {
	return &EventListener{
		adapter:    a,
		dialer:     websocket.DefaultDialer,
		retryDelay: defaultRetryDelay,
		logger:     a.logger,
		done:       make(chan struct{}),
	}
}

// Run starts listening in the background until ctx is done.
func (l *EventListener) Run(ctx context.Context) {
	go func() {
		defer close(l.done)

		for {
			err := l.listen(ctx)
			if ctx.Err() != nil {
				return
			}
			l.logger.Warn().Err(err).Str("func", "*EventListener.Run").Dur("retry", l.retryDelay).Msg("event stream lost")

			select {
			case <-ctx.Done():
				return
			case <-time.After(l.retryDelay):
			}

			if err = l.adapter.Refresh(ctx); err != nil {
				l.logger.Debug().Err(err).Msg("refresh after reconnect failed")
			}
		}
	}()
}

// Wait blocks until the goroutine started by Run has returned.
func (l *EventListener) Wait() {
	<-l.done
}

type streamEvent struct {
	ID   string           `json:"id"`
	Type models.EventType `json:"type"`
	Data json.RawMessage  `json:"data"`
}

func (l *EventListener) listen(ctx context.Context) error {
	conn, resp, err := l.dialer.DialContext(ctx, eventsURL(l.adapter.baseURL), nil)
	if err != nil {
		return fmt.Errorf("dial event stream: %w", err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	for {
		var event streamEvent
		if err = conn.ReadJSON(&event); err != nil {
			return err
		}
		if event.Type != models.EventConfigChanged {
			continue
		}

		var view models.ConfigView
		if err = json.Unmarshal(event.Data, &view); err != nil {
			l.logger.Err(err).Str("func", "*EventListener.listen").Str("event_id", event.ID).Msg("malformed config event")
			continue
		}
		l.adapter.apply(view.Config)
	}
}

// eventsURL turns the http(s) base URL into the ws(s) URL of the stream.
func eventsURL(baseURL string) string {
	return "ws" + strings.TrimPrefix(baseURL, "http") + "/api/events"
}
