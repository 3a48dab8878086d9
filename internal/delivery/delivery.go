// Package delivery defines the long-running entry points of the service.
package delivery

import "context"

// Delivery is a server or consumer started by the application and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
