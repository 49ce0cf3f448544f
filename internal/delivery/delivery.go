// Package delivery defines the transport entry points of the service.
package delivery

import "context"

// Delivery is a long-running transport started by the main command.
type Delivery interface {
	// Serve blocks until the transport stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
