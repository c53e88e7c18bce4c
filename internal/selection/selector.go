// Package selection picks the single best emission factor for a category,
// preferring local, recent, default and high-quality factors in that order.
package selection

import (
	"errors"
	"fmt"

	"github.com/carboneg/emissions-engine/internal/activity"
	"github.com/carboneg/emissions-engine/internal/catalog"
	"github.com/rs/zerolog"
)

// ErrNotFound is reported when no factor matches the selection criteria.
var ErrNotFound = errors.New("no suitable emission factor found")

// Selector resolves emission factors against a read-only catalog.
type Selector struct {
	catalog catalog.Catalog
	logger  zerolog.Logger
}

// NewSelector creates a Selector backed by the given catalog.
func NewSelector(cat catalog.Catalog, logger zerolog.Logger) *Selector {
	return &Selector{catalog: cat, logger: logger}
}

// Strategy is one step of the selection chain. Strategies are evaluated
// in order until one yields a factor.
type Strategy struct {
	Name string
	Find func(base catalog.Filter) (catalog.Factor, bool)
}

// Select returns the best-matching factor for the category and input.
//
// An explicit factor ID short-circuits the chain. Otherwise regions are
// searched in catalog.RegionPriority order, each sorted by year descending,
// default first, quality descending, followed by a region-agnostic
// fallback. Identical catalog state and input always select the same
// factor.
func (s *Selector) Select(cat catalog.Category, in activity.Input) (catalog.Factor, error) {
	if in.FactorID != "" {
		f, ok := s.catalog.FactorByID(in.FactorID)
		if !ok {
			return catalog.Factor{}, fmt.Errorf("factor %q: %w", in.FactorID, ErrNotFound)
		}
		return f, nil
	}

	base := catalog.Filter{
		CategoryID:  cat.ID,
		FuelType:    in.Metadata.String(activity.KeyFuelType),
		VehicleType: in.Metadata.String(activity.KeyVehicleType),
		ActiveOnly:  true,
	}

	for _, strat := range s.Chain() {
		if f, ok := strat.Find(base); ok {
			s.logger.Debug().
				Str("strategy", strat.Name).
				Str("factor_id", f.ID).
				Str("category_id", cat.ID).
				Msg("emission factor selected")
			return f, nil
		}
	}

	return catalog.Factor{}, fmt.Errorf("category %q: %w", cat.ID, ErrNotFound)
}

// Chain returns the ordered selection strategies: one per region in
// priority order, then the any-region fallback.
func (s *Selector) Chain() []Strategy {
	chain := make([]Strategy, 0, len(catalog.RegionPriority)+1)
	for _, region := range catalog.RegionPriority {
		chain = append(chain, Strategy{
			Name: "region:" + string(region),
			Find: s.regionFinder(region),
		})
	}
	chain = append(chain, Strategy{Name: "any-region", Find: s.anyRegion})
	return chain
}

func (s *Selector) regionFinder(region catalog.Region) func(catalog.Filter) (catalog.Factor, bool) {
	return func(base catalog.Filter) (catalog.Factor, bool) {
		base.Region = region
		return first(s.catalog.Factors(base))
	}
}

func (s *Selector) anyRegion(base catalog.Filter) (catalog.Factor, bool) {
	return first(s.catalog.Factors(base))
}

func first(factors []catalog.Factor) (catalog.Factor, bool) {
	if len(factors) == 0 {
		return catalog.Factor{}, false
	}
	return factors[0], true
}
