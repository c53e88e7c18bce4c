package distance

import (
	"context"

	"github.com/rs/zerolog"
)

// knownRoutes holds great-circle distances for common routes out of Cairo,
// keyed "{origin}-{destination}". Lookups check both directions.
var knownRoutes = map[string]float64{
	"CAI-DXB": 2196, // Cairo - Dubai
	"CAI-LHR": 3520, // Cairo - London
	"CAI-JFK": 8965, // Cairo - New York
	"CAI-CDG": 3221, // Cairo - Paris
	"CAI-FRA": 2895, // Cairo - Frankfurt
	"CAI-IST": 1094, // Cairo - Istanbul
	"CAI-DOH": 1832, // Cairo - Doha
	"CAI-RUH": 1278, // Cairo - Riyadh
}

// FallbackResolver wraps a primary Resolver with the static route table.
// The primary gets exactly one attempt; on any failure the table is
// consulted, and only when both miss does resolution fail with
// ErrUnavailable.
type FallbackResolver struct {
	primary Resolver
	logger  zerolog.Logger
}

// NewFallbackResolver wraps primary with the static route fallback.
// A nil primary skips straight to the table.
func NewFallbackResolver(primary Resolver, logger zerolog.Logger) *FallbackResolver {
	return &FallbackResolver{primary: primary, logger: logger}
}

// Distance resolves via the primary resolver, then the route table.
func (r *FallbackResolver) Distance(ctx context.Context, origin, destination string) (float64, error) {
	if r.primary != nil {
		km, err := r.primary.Distance(ctx, origin, destination)
		if err == nil {
			return km, nil
		}
		r.logger.Warn().
			Err(err).
			Str("origin", origin).
			Str("destination", destination).
			Msg("distance service failed, trying static route table")
	}

	if km, ok := KnownRoute(origin, destination); ok {
		return km, nil
	}

	return 0, ErrUnavailable
}

// KnownRoute returns the static distance for a route, checking both
// directions.
func KnownRoute(origin, destination string) (float64, bool) {
	if km, ok := knownRoutes[origin+"-"+destination]; ok {
		return km, true
	}
	if km, ok := knownRoutes[destination+"-"+origin]; ok {
		return km, true
	}
	return 0, false
}
