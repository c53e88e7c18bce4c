// Package compute applies a category's calculation method to a normalized
// activity value and an emission factor, producing kilograms of CO2e.
package compute

import (
	"github.com/carboneg/emissions-engine/internal/activity"
	"github.com/carboneg/emissions-engine/internal/catalog"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LocalCurrency is the currency spend-based factors are denominated in.
const LocalCurrency = "EGP"

// currencyToEGP holds approximate exchange rates into EGP for spend-based
// inputs reported in foreign currencies. Unknown currencies multiply by 1.
var currencyToEGP = map[string]float64{
	"USD": 50,
	"EUR": 59,
	"GBP": 69,
}

// Computer derives emissions from normalized values.
type Computer struct {
	logger zerolog.Logger
}

// NewComputer creates a Computer using the given logger.
func NewComputer(logger zerolog.Logger) *Computer {
	return &Computer{logger: logger}
}

// Compute applies the category's calculation method, the factor's regional
// adjustment, and rounds the result to 2 decimal places (half-up).
func (c *Computer) Compute(normalized float64, factor catalog.Factor, cat catalog.Category, in activity.Input) float64 {
	var emissions float64

	switch cat.Method {
	case catalog.MethodSpendBased:
		emissions = c.spendBased(normalized, factor, in)
	case catalog.MethodHybrid:
		emissions = c.hybrid(normalized, factor, in)
	case catalog.MethodActivityBased, catalog.MethodDirect:
		emissions = normalized * factor.Factor
	default:
		// Unknown methods fall back to direct multiplication.
		c.logger.Debug().
			Str("category_id", cat.ID).
			Str("method", string(cat.Method)).
			Msg("unknown calculation method, using direct multiplication")
		emissions = normalized * factor.Factor
	}

	if factor.AdjustmentFactor != 0 {
		emissions *= factor.AdjustmentFactor
	}

	return Round2(emissions)
}

// spendBased converts a monetary value into EGP before applying the factor.
func (c *Computer) spendBased(value float64, factor catalog.Factor, in activity.Input) float64 {
	adjusted := value
	if currency := in.Metadata.String(activity.KeyCurrency); currency != "" && currency != LocalCurrency {
		rate, ok := currencyToEGP[currency]
		if !ok {
			rate = 1
			c.logger.Warn().
				Str("currency", currency).
				Msg("no exchange rate for currency, spend used unconverted")
		}
		adjusted = value * rate
	}
	return adjusted * factor.Factor
}

// hybrid prefers physical activity data when the caller supplied it,
// otherwise degrades to the spend-based path.
func (c *Computer) hybrid(value float64, factor catalog.Factor, in activity.Input) float64 {
	if activityData, ok := in.Metadata.Float(activity.KeyActivityData); ok {
		return activityData * factor.Factor
	}
	return c.spendBased(value, factor, in)
}

// Round2 rounds to 2 decimal places, half away from zero. Emissions are
// non-negative, so this is round-half-up on the whole domain.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
