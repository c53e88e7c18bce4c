// Package distance resolves great-circle travel distances between airport
// codes. The primary resolver calls an external lookup service; a static
// table of known routes serves as the fallback when the service is down.
package distance

import (
	"context"
	"errors"
)

// ErrUnavailable is reported when every resolution strategy is exhausted.
// It is a terminal, user-facing condition: the caller must supply the
// distance manually.
var ErrUnavailable = errors.New("distance lookup failed - please enter distance manually")

// Resolver resolves the distance in kilometers between two locations.
type Resolver interface {
	Distance(ctx context.Context, origin, destination string) (float64, error)
}

// Func adapts a plain function to the Resolver interface.
type Func func(ctx context.Context, origin, destination string) (float64, error)

// Distance calls f.
func (f Func) Distance(ctx context.Context, origin, destination string) (float64, error) {
	return f(ctx, origin, destination)
}
