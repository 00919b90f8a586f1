// Package server runs the HTTP API of the editor back end.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured timeout.
package server
