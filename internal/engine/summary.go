package engine

import (
	"github.com/carboneg/emissions-engine/internal/catalog"
	"github.com/carboneg/emissions-engine/internal/compute"
	"github.com/shopspring/decimal"
)

// Summarize folds a result set into totals: overall emissions, breakdowns
// by scope and category name, rating counts and the rounded average
// confidence.
func (e *Engine) Summarize(results []*CalculationResult) Summary {
	summary := Summary{
		ScopeBreakdown:    make(map[int]float64),
		CategoryBreakdown: make(map[string]float64),
	}

	totalConfidence := 0
	for _, r := range results {
		emissions := r.Calculation.Emissions
		summary.TotalEmissions += emissions
		summary.ScopeBreakdown[r.Category.Scope] += emissions
		summary.CategoryBreakdown[r.Category.Name] += emissions

		totalConfidence += r.Quality.Confidence
		switch r.Quality.Rating {
		case catalog.RatingHigh:
			summary.Quality.HighCount++
		case catalog.RatingMedium:
			summary.Quality.MediumCount++
		case catalog.RatingLow:
			summary.Quality.LowCount++
		}
	}

	summary.TotalEmissions = compute.Round2(summary.TotalEmissions)
	for scope, v := range summary.ScopeBreakdown {
		summary.ScopeBreakdown[scope] = compute.Round2(v)
	}
	for name, v := range summary.CategoryBreakdown {
		summary.CategoryBreakdown[name] = compute.Round2(v)
	}

	if len(results) > 0 {
		avg := decimal.NewFromInt(int64(totalConfidence)).
			Div(decimal.NewFromInt(int64(len(results)))).
			Round(0)
		summary.Quality.AverageConfidence = int(avg.IntPart())
	}

	return summary
}
