// Package units normalizes activity values between units using the
// category's own allowed-unit list and a global static conversion table.
package units

import (
	"github.com/carboneg/emissions-engine/internal/catalog"
	"github.com/rs/zerolog"
)

// Converter performs unit normalization. An unrecognized unit never fails
// a calculation: the value passes through unchanged with a logged warning.
type Converter struct {
	logger zerolog.Logger
}

// NewConverter creates a Converter using the given logger.
func NewConverter(logger zerolog.Logger) *Converter {
	return &Converter{logger: logger}
}

// Convert normalizes value from fromUnit into the factor's unit.
//
// Resolution order:
//  1. fromUnit already matches the factor unit or the category base unit.
//  2. The category's allowedUnits list carries a conversionToBase multiplier.
//  3. The global "{from}_to_{to}" conversion table.
//  4. Passthrough: the value is used as-is and a warning is logged.
//
// The boolean reports whether a conversion rule applied (true for the
// identity case as well); false means passthrough.
func (c *Converter) Convert(value float64, fromUnit string, cat catalog.Category, factor catalog.Factor) (float64, bool) {
	if fromUnit == factor.Unit || fromUnit == cat.BaseUnit {
		return value, true
	}

	if u, ok := cat.AllowedUnit(fromUnit); ok && u.ConversionToBase != 0 {
		return value * u.ConversionToBase, true
	}

	if mult, ok := GlobalConversion(fromUnit, factor.Unit); ok {
		return value * mult, true
	}

	c.logger.Warn().
		Str("from_unit", fromUnit).
		Str("to_unit", factor.Unit).
		Str("category_id", cat.ID).
		Msg("no unit conversion found, using value as-is")
	return value, false
}
