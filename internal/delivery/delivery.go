// Package delivery defines the transport-agnostic contract for serving the application.
package delivery

import "context"

// Delivery is implemented by every transport that can serve the application.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
