package adapter

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-docs-keeper/internal/config"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/internal/service"
	"github.com/MKhiriev/go-docs-keeper/internal/utils"
	"github.com/MKhiriev/go-docs-keeper/models"
)

// HTTPPreferencesAdapter mirrors the server preferences. Reads are served
// from the last configuration received; Update goes to the server.
type HTTPPreferencesAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	logger  *logger.Logger

	current   atomic.Pointer[models.Config]
	mu        sync.Mutex
	listeners service.ConfigListeners
}

var (
	_ service.PreferencesService = (*HTTPPreferencesAdapter)(nil)
	_ VersionSource              = (*HTTPPreferencesAdapter)(nil)
)

// NewHTTPPreferencesAdapter validates cfg.HTTPAddress and fetches the
// current configuration once.
func NewHTTPPreferencesAdapter(ctx context.Context, cfg config.Adapter, logger *logger.Logger) (*HTTPPreferencesAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &HTTPPreferencesAdapter{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		baseURL: baseURL,
		logger:  logger,
	}
	if err := a.Refresh(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Refresh replaces the local copy with GET /api/config.
func (a *HTTPPreferencesAdapter) Refresh(ctx context.Context) error {
	var cfg models.Config

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&cfg).
		Get("/api/config")
	if err != nil {
		return fmt.Errorf("get config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	a.apply(cfg)
	return nil
}

// apply stores a configuration received from the server and notifies the
// listeners when it differs from the cached one.
func (a *HTTPPreferencesAdapter) apply(cfg models.Config) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if prev := a.current.Load(); prev != nil && reflect.DeepEqual(*prev, cfg) {
		return
	}
	a.current.Store(&cfg)
	a.listeners.Notify(cfg)
}

func (a *HTTPPreferencesAdapter) Get() models.Config {
	return a.current.Load().Clone()
}

// Update sends PATCH /api/config. Listeners are notified with the
// configuration the server answered with, unless the event stream already
// delivered it.
func (a *HTTPPreferencesAdapter) Update(ctx context.Context, patch models.ConfigPatch) (models.Config, error) {
	var cfg models.Config
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&cfg).
		Patch("/api/config")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*HTTPPreferencesAdapter.Update").Msg("patch config request failed")
		return models.Config{}, fmt.Errorf("update config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Config{}, err
	}

	a.apply(cfg)

	return cfg.Clone(), nil
}

func (a *HTTPPreferencesAdapter) Theme() string {
	return a.current.Load().ThemeOrDefault()
}

func (a *HTTPPreferencesAdapter) ShowMdToolbar() bool {
	return a.current.Load().MdToolbar.Any()
}

func (a *HTTPPreferencesAdapter) ShowAhtmlToolbar() bool {
	return a.current.Load().AhtmlToolbar.Any()
}

func (a *HTTPPreferencesAdapter) View() models.ConfigView {
	return models.NewConfigView(*a.current.Load())
}

func (a *HTTPPreferencesAdapter) Subscribe(listener func(models.ConfigView)) func() {
	return a.listeners.Subscribe(listener)
}

// Version implements [VersionSource] with GET /api/version.
func (a *HTTPPreferencesAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}
