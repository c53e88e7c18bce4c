// Package quality scores the trustworthiness of a calculation from factor
// provenance, age, uncertainty and input completeness.
package quality

import (
	"strings"
	"time"

	"github.com/carboneg/emissions-engine/internal/activity"
	"github.com/carboneg/emissions-engine/internal/catalog"
)

// Assessment is the quality verdict attached to every calculation result.
type Assessment struct {
	Rating     catalog.Rating `json:"rating"`
	Confidence int            `json:"confidence"` // 0-100
	Notes      []string       `json:"notes"`
}

// highQualitySources are recognized authoritative factor publishers.
// A factor whose source mentions any of these avoids the source penalty.
var highQualitySources = []string{"DEFRA", "IPCC", "IEA", "EEHC", "EPA"}

// Assessor scores calculations. The year function is injectable so age
// rules are deterministic under test; it defaults to the current year.
type Assessor struct {
	year func() int
}

// NewAssessor creates an Assessor using the wall clock for factor age.
func NewAssessor() *Assessor {
	return &Assessor{year: func() int { return time.Now().Year() }}
}

// NewAssessorAt creates an Assessor that treats year as the current year.
func NewAssessorAt(year int) *Assessor {
	return &Assessor{year: func() int { return year }}
}

// Assess scores the factor/category/input combination. It is a pure
// function of its arguments (and the injected year): confidence starts at
// 100 and rating at high, rules apply deductions and credits in a fixed
// order, and notes record each rule that fired.
func (a *Assessor) Assess(factor catalog.Factor, cat catalog.Category, in activity.Input) Assessment {
	notes := []string{}
	confidence := 100
	rating := catalog.RatingHigh

	// Region: local factors earn a credit, everything else a deduction.
	if factor.Region == catalog.RegionEgypt {
		notes = append(notes, "Using Egyptian-specific emission factor")
		confidence += 10
	} else {
		notes = append(notes, "Using global emission factor (Egyptian factor not available)")
		confidence -= 10
	}

	// Factor age.
	age := a.year() - factor.Year
	switch {
	case age <= 2:
		notes = append(notes, "Recent emission factor (≤2 years old)")
	case age <= 5:
		notes = append(notes, "Moderately recent emission factor (3-5 years old)")
		confidence -= 5
	default:
		notes = append(notes, "Older emission factor (>5 years old) - consider updating")
		confidence -= 15
		rating = catalog.RatingMedium
	}

	// Source reputation.
	if isHighQualitySource(factor.Source) {
		notes = append(notes, "High-quality data source")
	} else {
		notes = append(notes, "Custom or secondary data source")
		confidence -= 5
	}

	// Factor uncertainty.
	switch {
	case factor.Uncertainty > 50:
		notes = append(notes, "High uncertainty in emission factor")
		confidence -= 20
		rating = catalog.RatingLow
	case factor.Uncertainty > 20:
		notes = append(notes, "Moderate uncertainty in emission factor")
		confidence -= 10
		if rating == catalog.RatingHigh {
			rating = catalog.RatingMedium
		}
	}

	// Input completeness against the category's declared schema.
	required := len(cat.RequiredInputs)
	if required < 1 {
		required = 1
	}
	completeness := float64(len(in.Metadata)) / float64(required)
	switch {
	case completeness < 0.5:
		notes = append(notes, "Limited input data provided")
		confidence -= 15
		rating = catalog.RatingMedium
	case completeness < 1:
		notes = append(notes, "Some optional input data missing")
		confidence -= 5
	}

	if confidence > 100 {
		confidence = 100
	}
	if confidence < 0 {
		confidence = 0
	}

	// Reconcile the rating with the final confidence.
	switch {
	case confidence < 50:
		rating = catalog.RatingLow
	case confidence < 75:
		if rating != catalog.RatingLow {
			rating = catalog.RatingMedium
		}
	}

	return Assessment{Rating: rating, Confidence: confidence, Notes: notes}
}

func isHighQualitySource(source string) bool {
	for _, s := range highQualitySources {
		if strings.Contains(source, s) {
			return true
		}
	}
	return false
}
