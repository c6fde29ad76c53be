// Package delivery holds the process entry points: the API server and the inbox worker.
package delivery

import "context"

// Delivery is a long-running transport started by a cmd.
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
