// Package delivery defines the inbound surfaces started by the application.
package delivery

import "context"

// Delivery is a long-running inbound surface such as the HTTP API or the scheduler.
type Delivery interface {
	Serve(ctx context.Context) error
}
