// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the terminal client use the preferences of a running
// server.
//
// [NewHTTPPreferencesAdapter] implements [service.PreferencesService] over
// the HTTP API, so the TUI works the same way against local storage and
// against a server.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-docs-keeper/models"
)

// VersionSource reports the build of the remote server.
type VersionSource interface {
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
