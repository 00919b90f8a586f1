// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-docs-keeper/internal/adapter"
)

const msgServerUnavailable = "server is unavailable or the network is down"

// humanizeServerUnavailableError shortens transport failures of the remote
// mode to a single readable line. Other errors keep their text.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	switch {
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return "preferences storage on the server is unavailable"
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr):
		return msgServerUnavailable
	}

	// resty flattens some dial errors into plain text
	s := strings.ToLower(err.Error())
	for _, marker := range []string{"connection refused", "dial tcp", "no such host", "network is unreachable", "i/o timeout"} {
		if strings.Contains(s, marker) {
			return msgServerUnavailable
		}
	}

	return err.Error()
}
