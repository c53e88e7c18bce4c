package engine

import (
	"context"
	"testing"

	"github.com/carboneg/emissions-engine/internal/activity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	e := newTestEngine()

	inputs := []activity.Input{
		electricityInput(1000, "kWh"), // scope 2, 458.00, high
		electricityInput(500, "kWh"),  // scope 2, 229.00, high
		businessTravelInput(false),    // scope 3, 559.98
	}
	results := e.CalculateBatch(context.Background(), inputs)
	require.Len(t, results, 3)

	summary := e.Summarize(results)

	assert.Equal(t, 1246.98, summary.TotalEmissions)
	assert.Equal(t, 687.00, summary.ScopeBreakdown[2])
	assert.Equal(t, 559.98, summary.ScopeBreakdown[3])
	assert.Equal(t, 687.00, summary.CategoryBreakdown["Purchased Electricity"])
	assert.Equal(t, 559.98, summary.CategoryBreakdown["Business Travel"])

	total := summary.Quality.HighCount + summary.Quality.MediumCount + summary.Quality.LowCount
	assert.Equal(t, 3, total)
	assert.GreaterOrEqual(t, summary.Quality.AverageConfidence, 0)
	assert.LessOrEqual(t, summary.Quality.AverageConfidence, 100)
}

func TestSummarize_Empty(t *testing.T) {
	e := newTestEngine()

	summary := e.Summarize(nil)

	assert.Zero(t, summary.TotalEmissions)
	assert.Empty(t, summary.ScopeBreakdown)
	assert.Empty(t, summary.CategoryBreakdown)
	assert.Zero(t, summary.Quality.AverageConfidence)
}

func TestSummarize_AverageConfidenceRounds(t *testing.T) {
	e := newTestEngine()

	high, err := e.Calculate(context.Background(), electricityInput(1, "kWh"))
	require.NoError(t, err)

	uncertain := electricityInput(1, "kWh")
	uncertain.FactorID = "uncertain"
	low, err := e.Calculate(context.Background(), uncertain)
	require.NoError(t, err)

	summary := e.Summarize([]*CalculationResult{high, low, low})

	// (100 + 85 + 85) / 3 = 90
	assert.Equal(t, 90, summary.Quality.AverageConfidence)
}
