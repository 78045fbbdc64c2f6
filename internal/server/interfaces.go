package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a stop signal
	// arrives, then shuts down gracefully. It returns early with an error
	// if serving fails.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx is done.
	Shutdown(ctx context.Context) error
}
