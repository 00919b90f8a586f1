package server

import "context"

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer serves requests until ctx is done or a termination signal
	// arrives, then shuts down gracefully. It returns early if the listener
	// cannot be started.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context)
}
