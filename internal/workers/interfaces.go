// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Refresher reloads a remote resource, such as the token signing keys.
type Refresher interface {
	Refresh(ctx context.Context) error
}
