// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// ExpiringSession is the part of the client session the watcher needs.
type ExpiringSession interface {
	IsAuthenticated() bool
	Expired() bool
	Clear(ctx context.Context) error
}
