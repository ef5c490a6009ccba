// Package delivery defines the contract every transport entry point
// implements so the fx graph can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server.
type Delivery interface {
	Serve(ctx context.Context) error
}
