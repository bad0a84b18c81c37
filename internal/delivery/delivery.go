// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) managed by the fx lifecycle.
type Delivery interface {
	// Serve blocks, serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
