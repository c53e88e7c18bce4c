// Package activity defines the calculation input record and the typed
// metadata bag that accompanies it. Metadata keys depend on the category's
// declared required inputs; values are validated against those declarations
// at the engine boundary instead of being type-asserted ad hoc inside the
// computation code.
package activity

import (
	"fmt"
	"strings"

	"github.com/carboneg/emissions-engine/internal/catalog"
)

// Metadata is a free-form key/value bag supplied with an activity record.
type Metadata map[string]any

// Well-known metadata keys read by the engine.
const (
	KeyFuelType     = "fuelType"
	KeyVehicleType  = "vehicleType"
	KeyCurrency     = "currency"
	KeyActivityData = "activityData"
	KeyTravelMode   = "travelMode"
	KeyTravelClass  = "travelClass"
	KeyOrigin       = "origin"
	KeyDestination  = "destination"
	KeyRoundTrip    = "roundTrip"
	KeyLocation     = "location"
	KeyTimeOfUse    = "timeOfUse"
)

// String returns the string value for key, or "" if absent or not a string.
func (m Metadata) String(key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// Float returns the numeric value for key. Integers decoded from JSON or
// YAML are accepted alongside floats.
func (m Metadata) Float(key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Bool returns the boolean value for key. String forms ("true", "yes")
// are accepted because select-style inputs arrive as text.
func (m Metadata) Bool(key string) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "true" || s == "yes"
	}
	return false
}

// Input is one activity record submitted for calculation.
type Input struct {
	CategoryID string   `json:"categoryId"`
	Value      float64  `json:"value"`
	Unit       string   `json:"unit"`
	FactorID   string   `json:"factorId,omitempty"`
	Metadata   Metadata `json:"metadata,omitempty"`

	// UserID and OrganizationID are pass-through identifiers; the engine
	// echoes them but never uses them in computation.
	UserID         string `json:"userId,omitempty"`
	OrganizationID string `json:"organizationId,omitempty"`
}

// ValidateMetadata checks the metadata values against the category's
// declared input schema. Missing fields are not an error here (they lower
// the quality score instead); a present field with the wrong type is.
func (in Input) ValidateMetadata(cat catalog.Category) error {
	for _, ri := range cat.RequiredInputs {
		v, ok := in.Metadata[ri.Field]
		if !ok {
			continue
		}
		switch ri.Type {
		case "number":
			if _, ok := in.Metadata.Float(ri.Field); !ok {
				return fmt.Errorf("metadata field %q must be a number, got %T", ri.Field, v)
			}
		case "text", "date", "select":
			if _, ok := v.(string); !ok {
				if _, isBool := v.(bool); isBool && ri.Type == "select" {
					// Yes/No selects may arrive as real booleans.
					continue
				}
				return fmt.Errorf("metadata field %q must be a string, got %T", ri.Field, v)
			}
		}
	}
	return nil
}
