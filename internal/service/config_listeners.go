package service

import (
	"sync"

	"github.com/MKhiriev/go-docs-keeper/models"
)

// ConfigListeners is a registry of preference listeners. The zero value is
// ready to use.
type ConfigListeners struct {
	mu        sync.RWMutex
	listeners map[uint64]func(models.ConfigView)
	nextID    uint64
}

// Subscribe registers listener and returns an idempotent cancel func.
func (l *ConfigListeners) Subscribe(listener func(models.ConfigView)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.listeners == nil {
		l.listeners = make(map[uint64]func(models.ConfigView))
	}
	id := l.nextID
	l.nextID++
	l.listeners[id] = listener

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.listeners, id)
		})
	}
}

// Notify calls every listener with a fresh view of cfg. The set is copied
// first so a listener may subscribe or cancel.
func (l *ConfigListeners) Notify(cfg models.Config) {
	l.mu.RLock()
	listeners := make([]func(models.ConfigView), 0, len(l.listeners))
	for _, listener := range l.listeners {
		listeners = append(listeners, listener)
	}
	l.mu.RUnlock()

	for _, listener := range listeners {
		listener(models.NewConfigView(cfg))
	}
}
