// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// docs-keeper server handlers.
//
// Msg* constants are the human-readable strings written into HTTP response
// bodies when the underlying error must not reach the caller verbatim.
package app

const (
	// MsgInvalidDataProvided prefixes the reply to a request body that cannot
	// be decoded (unknown keys, wrong types or trailing data).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError replaces the message of every unmapped error so
	// storage and driver details stay in the server log.
	MsgInternalServerError = "internal server error"

	// MsgStorageUnavailable is returned once the preference storage has been
	// closed during shutdown.
	MsgStorageUnavailable = "storage is unavailable"
)
