// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPHandler is returned by NewHandlers when the server
// configuration has no HTTP address, leaving the API without a transport.
var errNoHTTPHandler = errors.New("http address is not configured")
