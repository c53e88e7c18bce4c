// Package catalog provides the emission category and factor catalog
// consumed by the calculation engine. The catalog is read-only from the
// engine's point of view; entries are loaded once from YAML (or the
// embedded seed data) and never mutated afterwards.
package catalog

// Region is the geographic scope of an emission factor.
type Region string

const (
	RegionEgypt  Region = "egypt"
	RegionMENA   Region = "mena"
	RegionGlobal Region = "global"
	RegionEU     Region = "eu"
	RegionUS     Region = "us"
)

// RegionPriority is the fixed search order used when selecting factors:
// prefer local (Egyptian) factors, then global averages, then other regions.
var RegionPriority = []Region{RegionEgypt, RegionGlobal, RegionMENA, RegionEU, RegionUS}

// Method identifies how emissions are derived for a category.
type Method string

const (
	MethodActivityBased Method = "activity_based"
	MethodSpendBased    Method = "spend_based"
	MethodHybrid        Method = "hybrid"
	MethodDirect        Method = "direct"
)

// Rating is a categorical data-quality level.
type Rating string

const (
	RatingHigh   Rating = "high"
	RatingMedium Rating = "medium"
	RatingLow    Rating = "low"
)

// ratingRank orders ratings for factor sorting (higher is better).
var ratingRank = map[Rating]int{
	RatingHigh:   3,
	RatingMedium: 2,
	RatingLow:    1,
}

// AllowedUnit describes an input unit a category accepts and its
// conversion multiplier into the category's base unit.
type AllowedUnit struct {
	Unit             string  `yaml:"unit" json:"unit"`
	Description      string  `yaml:"description,omitempty" json:"description,omitempty"`
	ConversionToBase float64 `yaml:"conversionToBase" json:"conversionToBase"`
}

// RequiredInput describes a metadata field a category expects alongside
// the numeric activity value.
type RequiredInput struct {
	Field    string   `yaml:"field" json:"field"`
	Type     string   `yaml:"type" json:"type"` // number, text, date, select
	Required bool     `yaml:"required" json:"required"`
	Options  []string `yaml:"options,omitempty" json:"options,omitempty"`
}

// Category is a GHG Protocol reporting bucket (e.g. "Purchased Electricity").
type Category struct {
	ID             string          `yaml:"id" json:"id"`
	Scope          int             `yaml:"scope" json:"scope"`
	Name           string          `yaml:"name" json:"name"`
	Subcategory    string          `yaml:"subcategory,omitempty" json:"subcategory,omitempty"`
	Description    string          `yaml:"description,omitempty" json:"description,omitempty"`
	BaseUnit       string          `yaml:"baseUnit" json:"baseUnit"`
	AllowedUnits   []AllowedUnit   `yaml:"allowedUnits,omitempty" json:"allowedUnits,omitempty"`
	Method         Method          `yaml:"calculationMethod" json:"calculationMethod"`
	RequiredInputs []RequiredInput `yaml:"requiredInputs,omitempty" json:"requiredInputs,omitempty"`
	Priority       string          `yaml:"priority,omitempty" json:"priority,omitempty"`
	Active         bool            `yaml:"active" json:"active"`
	DisplayOrder   int             `yaml:"displayOrder,omitempty" json:"displayOrder,omitempty"`
}

// AllowedUnit returns the allowed-unit entry matching unit, if any.
func (c Category) AllowedUnit(unit string) (AllowedUnit, bool) {
	for _, u := range c.AllowedUnits {
		if u.Unit == unit {
			return u, true
		}
	}
	return AllowedUnit{}, false
}

// Factor is an emission coefficient mapping one unit of activity to
// kilograms of CO2-equivalent.
type Factor struct {
	ID            string  `yaml:"id" json:"id"`
	CategoryID    string  `yaml:"categoryId" json:"categoryId"`
	Code          string  `yaml:"code,omitempty" json:"code,omitempty"`
	Name          string  `yaml:"name" json:"name"`
	Factor        float64 `yaml:"factor" json:"factor"`
	Unit          string  `yaml:"unit" json:"unit"` // activity unit the coefficient applies to, e.g. "kWh"
	Source        string  `yaml:"source" json:"source"`
	Region        Region  `yaml:"region" json:"region"`
	Country       string  `yaml:"country,omitempty" json:"country,omitempty"`
	Year          int     `yaml:"year" json:"year"`
	Uncertainty   float64 `yaml:"uncertainty,omitempty" json:"uncertainty,omitempty"` // percentage, 0-100
	QualityRating Rating  `yaml:"qualityRating,omitempty" json:"qualityRating,omitempty"`
	FuelType      string  `yaml:"fuelType,omitempty" json:"fuelType,omitempty"`
	VehicleType   string  `yaml:"vehicleType,omitempty" json:"vehicleType,omitempty"`
	MaterialType  string  `yaml:"materialType,omitempty" json:"materialType,omitempty"`
	IsDefault     bool    `yaml:"isDefault,omitempty" json:"isDefault,omitempty"`
	Active        bool    `yaml:"active" json:"active"`

	// AdjustmentFactor is an optional multiplier applied after the method
	// formula to correct for local grid or fuel conditions.
	AdjustmentFactor float64 `yaml:"adjustmentFactor,omitempty" json:"adjustmentFactor,omitempty"`
	LocalNotes       string  `yaml:"localNotes,omitempty" json:"localNotes,omitempty"`
}
