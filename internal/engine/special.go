package engine

import (
	"context"
	"strings"

	"github.com/carboneg/emissions-engine/internal/activity"
	"github.com/carboneg/emissions-engine/internal/catalog"
	"github.com/carboneg/emissions-engine/internal/compute"
)

// AviationFactorKgPerKm is the average passenger-flight emission factor
// applied in the business-travel special case.
const AviationFactorKgPerKm = 0.255

// travelClassMultipliers scale flight emissions by cabin class. Unknown
// classes use the economy multiplier.
var travelClassMultipliers = map[string]float64{
	"Economy":  1.0,
	"Business": 1.5,
	"First":    2.0,
}

// timeOfUseMultipliers is an extension point for Egyptian grid time-of-use
// factors. The grid's generation mix varies through the day, but published
// per-band intensities are not yet available, so every band is neutral.
var timeOfUseMultipliers = map[string]float64{
	"peak":     1.0,
	"off-peak": 1.0,
	"standard": 1.0,
}

// cairoCommuteMultiplier is an extension point for Cairo traffic
// congestion adjustments to commuting emissions. Neutral until local
// measurement data exists.
const cairoCommuteMultiplier = 1.0

// applySpecialCases post-processes emissions for categories that need
// non-generic handling. Categories without special handling pass the base
// figure through unchanged.
func (e *Engine) applySpecialCases(ctx context.Context, traceID string, base float64, cat catalog.Category, in activity.Input) float64 {
	name := strings.ToLower(cat.Name)

	if strings.Contains(name, "business travel") &&
		in.Metadata.String(activity.KeyOrigin) != "" &&
		in.Metadata.String(activity.KeyDestination) != "" {
		return e.businessTravel(ctx, traceID, in)
	}

	if strings.Contains(name, "commuting") && in.Metadata.String(activity.KeyLocation) == "Cairo" {
		return compute.Round2(base * cairoCommuteMultiplier)
	}

	if strings.Contains(name, "electricity") {
		if tou := in.Metadata.String(activity.KeyTimeOfUse); tou != "" {
			mult, ok := timeOfUseMultipliers[tou]
			if !ok {
				mult = 1.0
			}
			return compute.Round2(base * mult)
		}
	}

	return base
}

// businessTravel computes flight emissions from the resolved route
// distance, cabin class, and trip direction. A distance-resolution failure
// degrades to the generic activity-based figure instead of failing the
// calculation.
func (e *Engine) businessTravel(ctx context.Context, traceID string, in activity.Input) float64 {
	origin := in.Metadata.String(activity.KeyOrigin)
	destination := in.Metadata.String(activity.KeyDestination)

	if in.Metadata.String(activity.KeyTravelMode) == "Flight" {
		km, err := e.resolver.Distance(ctx, origin, destination)
		if err == nil {
			mult, ok := travelClassMultipliers[in.Metadata.String(activity.KeyTravelClass)]
			if !ok {
				mult = 1.0
			}
			emissions := km * AviationFactorKgPerKm * mult
			if in.Metadata.Bool(activity.KeyRoundTrip) {
				emissions *= 2
			}
			return compute.Round2(emissions)
		}

		svcErr := &ExternalServiceError{Op: "distance-lookup", Err: err}
		e.logger.Warn().
			Str("trace_id", traceID).
			Str("origin", origin).
			Str("destination", destination).
			Err(svcErr).
			Msg("business travel distance resolution failed, using generic calculation")
	}

	return compute.Round2(in.Value * AviationFactorKgPerKm)
}
