// Package engine orchestrates emission calculations: category validation,
// factor selection, unit normalization, method computation, special-case
// handling and quality assessment.
package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/carboneg/emissions-engine/internal/activity"
	"github.com/carboneg/emissions-engine/internal/catalog"
	"github.com/carboneg/emissions-engine/internal/compute"
	"github.com/carboneg/emissions-engine/internal/distance"
	"github.com/carboneg/emissions-engine/internal/quality"
	"github.com/carboneg/emissions-engine/internal/selection"
	"github.com/carboneg/emissions-engine/internal/units"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine is the calculation orchestrator. It is a pure function of
// (input, catalog state) apart from the distance resolver's external call,
// holds no mutable state, and is safe for concurrent use.
type Engine struct {
	catalog   catalog.Catalog
	resolver  distance.Resolver
	selector  *selection.Selector
	converter *units.Converter
	computer  *compute.Computer
	assessor  *quality.Assessor
	logger    zerolog.Logger
}

// New creates an Engine with injected catalog-read and distance-lookup
// dependencies.
func New(cat catalog.Catalog, resolver distance.Resolver, logger zerolog.Logger) *Engine {
	return &Engine{
		catalog:   cat,
		resolver:  resolver,
		selector:  selection.NewSelector(cat, logger),
		converter: units.NewConverter(logger),
		computer:  compute.NewComputer(logger),
		assessor:  quality.NewAssessor(),
		logger:    logger,
	}
}

// Calculate processes a single activity record into a calculation result.
//
// Errors follow the engine taxonomy: *ValidationError for a missing or
// inactive category or malformed metadata, *NotFoundError when no factor
// matches, *CalculationError for non-finite results.
func (e *Engine) Calculate(ctx context.Context, in activity.Input) (*CalculationResult, error) {
	start := time.Now()
	traceID := uuid.New().String()

	cat, ok := e.catalog.CategoryByID(in.CategoryID)
	if !ok {
		err := &ValidationError{Msg: fmt.Sprintf("emission category %q not found", in.CategoryID)}
		e.logError(traceID, in.CategoryID, err)
		return nil, err
	}
	if !cat.Active {
		err := &ValidationError{Msg: fmt.Sprintf("emission category %q is not active", in.CategoryID)}
		e.logError(traceID, in.CategoryID, err)
		return nil, err
	}
	if err := in.ValidateMetadata(cat); err != nil {
		verr := &ValidationError{Msg: err.Error()}
		e.logError(traceID, in.CategoryID, verr)
		return nil, verr
	}

	factor, err := e.selector.Select(cat, in)
	if err != nil {
		nfErr := &NotFoundError{Msg: "emission factor selection failed", Err: err}
		e.logError(traceID, in.CategoryID, nfErr)
		return nil, nfErr
	}

	normalized, _ := e.converter.Convert(in.Value, in.Unit, cat, factor)
	emissions := e.computer.Compute(normalized, factor, cat, in)
	emissions = e.applySpecialCases(ctx, traceID, emissions, cat, in)

	if math.IsNaN(emissions) || math.IsInf(emissions, 0) {
		cerr := &CalculationError{Msg: fmt.Sprintf("calculation for category %q produced a non-finite result", in.CategoryID)}
		e.logError(traceID, in.CategoryID, cerr)
		return nil, cerr
	}

	assessment := e.assessor.Assess(factor, cat, in)
	result := e.assembleResult(traceID, in, cat, factor, normalized, emissions, assessment)

	e.logger.Info().
		Str("trace_id", traceID).
		Str("category_id", cat.ID).
		Str("factor_id", factor.ID).
		Float64("emissions_kg", emissions).
		Str("quality_rating", string(assessment.Rating)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("calculation completed")

	return result, nil
}

// CalculateBatch processes inputs strictly in order, one at a time.
// A failed item is logged and skipped; the returned slice holds only the
// successful results, preserving input order, and may be shorter than the
// input.
func (e *Engine) CalculateBatch(ctx context.Context, inputs []activity.Input) []*CalculationResult {
	results := make([]*CalculationResult, 0, len(inputs))
	for i, in := range inputs {
		res, err := e.Calculate(ctx, in)
		if err != nil {
			e.logger.Error().
				Err(err).
				Int("index", i).
				Str("category_id", in.CategoryID).
				Msg("batch item failed, continuing")
			continue
		}
		results = append(results, res)
	}
	return results
}

func (e *Engine) assembleResult(traceID string, in activity.Input, cat catalog.Category, factor catalog.Factor, normalized, emissions float64, assessment quality.Assessment) *CalculationResult {
	meta := make(activity.Metadata, len(in.Metadata)+3)
	for k, v := range in.Metadata {
		meta[k] = v
	}
	meta["calculationMethod"] = string(cat.Method)
	meta["factorRegion"] = string(factor.Region)
	meta["qualityRating"] = string(assessment.Rating)

	return &CalculationResult{
		ID:           traceID,
		CalculatedAt: time.Now().UTC(),
		Calculation: Calculation{
			CategoryID:      in.CategoryID,
			Value:           in.Value,
			Unit:            in.Unit,
			NormalizedValue: normalized,
			Factor:          factor.Factor,
			Emissions:       emissions,
			Metadata:        meta,
		},
		Factor: FactorSummary{
			ID:          factor.ID,
			Code:        factor.Code,
			Name:        factor.Name,
			Value:       factor.Factor,
			Unit:        factor.Unit,
			Source:      factor.Source,
			Year:        factor.Year,
			Region:      factor.Region,
			Uncertainty: factor.Uncertainty,
		},
		Category: CategorySummary{
			ID:          cat.ID,
			Name:        cat.Name,
			Scope:       cat.Scope,
			Description: cat.Description,
		},
		Quality: assessment,
	}
}

func (e *Engine) logError(traceID, categoryID string, err error) {
	e.logger.Error().
		Str("trace_id", traceID).
		Str("category_id", categoryID).
		Err(err).
		Msg("calculation failed")
}
