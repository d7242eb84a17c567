// Package delivery defines the contract every transport frontend
// implements so the application can serve them uniformly.
package delivery

import "context"

// Delivery is a serving surface such as an HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
