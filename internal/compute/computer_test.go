package compute

import (
	"testing"

	"github.com/carboneg/emissions-engine/internal/activity"
	"github.com/carboneg/emissions-engine/internal/catalog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestCompute_ActivityBased(t *testing.T) {
	c := NewComputer(zerolog.Nop())
	cat := catalog.Category{Method: catalog.MethodActivityBased}
	factor := catalog.Factor{Factor: 0.458}

	got := c.Compute(1000, factor, cat, activity.Input{})

	assert.Equal(t, 458.00, got)
}

func TestCompute_SpendBased(t *testing.T) {
	c := NewComputer(zerolog.Nop())
	cat := catalog.Category{Method: catalog.MethodSpendBased}
	factor := catalog.Factor{Factor: 0.011}

	tests := []struct {
		name     string
		value    float64
		currency string
		want     float64
	}{
		{"local currency unchanged", 1000, "EGP", 11.00},
		{"no currency metadata unchanged", 1000, "", 11.00},
		{"USD converted at 50", 100, "USD", 55.00},
		{"EUR converted at 59", 100, "EUR", 64.90},
		{"GBP converted at 69", 100, "GBP", 75.90},
		{"unknown currency passes through", 100, "JPY", 1.10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := activity.Input{Metadata: activity.Metadata{}}
			if tt.currency != "" {
				in.Metadata["currency"] = tt.currency
			}
			got := c.Compute(tt.value, factor, cat, in)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestCompute_Hybrid(t *testing.T) {
	c := NewComputer(zerolog.Nop())
	cat := catalog.Category{Method: catalog.MethodHybrid}
	factor := catalog.Factor{Factor: 0.039}

	t.Run("activity data preferred", func(t *testing.T) {
		in := activity.Input{Metadata: activity.Metadata{"activityData": 2000.0, "currency": "USD"}}
		got := c.Compute(500, factor, cat, in)
		assert.InDelta(t, 78.00, got, 0.001)
	})

	t.Run("falls back to spend path", func(t *testing.T) {
		in := activity.Input{Metadata: activity.Metadata{"currency": "USD"}}
		got := c.Compute(100, factor, cat, in)
		assert.InDelta(t, 195.00, got, 0.001) // 100 * 50 * 0.039
	})
}

func TestCompute_DirectAndUnknownMethods(t *testing.T) {
	c := NewComputer(zerolog.Nop())
	factor := catalog.Factor{Factor: 2.5}

	for _, method := range []catalog.Method{catalog.MethodDirect, "mystery", ""} {
		t.Run(string(method), func(t *testing.T) {
			got := c.Compute(10, factor, catalog.Category{Method: method}, activity.Input{})
			assert.Equal(t, 25.00, got)
		})
	}
}

func TestCompute_RegionalAdjustment(t *testing.T) {
	c := NewComputer(zerolog.Nop())
	cat := catalog.Category{Method: catalog.MethodActivityBased}
	factor := catalog.Factor{Factor: 1.0, AdjustmentFactor: 1.1}

	got := c.Compute(100, factor, cat, activity.Input{})

	assert.InDelta(t, 110.00, got, 0.001)
}

func TestCompute_Deterministic(t *testing.T) {
	c := NewComputer(zerolog.Nop())
	cat := catalog.Category{Method: catalog.MethodActivityBased}
	factor := catalog.Factor{Factor: 0.458}

	first := c.Compute(1234.567, factor, cat, activity.Input{})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Compute(1234.567, factor, cat, activity.Input{}))
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{559.975, 559.98}, // half rounds up
		{559.974, 559.97},
		{0, 0},
		{458.0000001, 458.00},
		{1119.96, 1119.96},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}
