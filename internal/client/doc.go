// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It chooses where the preferences live, local storage or a running server,
// wires the settings screens on top and keeps the remote copy in sync with
// the server event stream.
package client
