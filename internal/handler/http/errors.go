// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for malformed requests. They map to 400 Bad Request.
var (
	// ErrMissingPath is returned when a route needs a path query parameter or
	// body field and none was given.
	ErrMissingPath = errors.New("path is required")

	// ErrMissingName is returned by create and rename without a new name.
	ErrMissingName = errors.New("name is required")

	// ErrInvalidBody wraps any JSON decoding failure of a request body.
	ErrInvalidBody = errors.New("invalid request body")
)
