package engine

import (
	"time"

	"github.com/carboneg/emissions-engine/internal/activity"
	"github.com/carboneg/emissions-engine/internal/catalog"
	"github.com/carboneg/emissions-engine/internal/quality"
)

// Calculation echoes the calculation that produced a result.
type Calculation struct {
	CategoryID      string            `json:"categoryId"`
	Value           float64           `json:"value"`
	Unit            string            `json:"unit"`
	NormalizedValue float64           `json:"normalizedValue"`
	Factor          float64           `json:"factor"`
	Emissions       float64           `json:"emissions"` // kg CO2e, rounded to 2 decimals
	Metadata        activity.Metadata `json:"metadata,omitempty"`
}

// FactorSummary describes the emission factor used for a calculation.
type FactorSummary struct {
	ID          string         `json:"id"`
	Code        string         `json:"code,omitempty"`
	Name        string         `json:"name"`
	Value       float64        `json:"value"`
	Unit        string         `json:"unit"`
	Source      string         `json:"source"`
	Year        int            `json:"year"`
	Region      catalog.Region `json:"region"`
	Uncertainty float64        `json:"uncertainty,omitempty"`
}

// CategorySummary describes the category a calculation was filed under.
type CategorySummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Scope       int    `json:"scope"`
	Description string `json:"description,omitempty"`
}

// CalculationResult is the engine's output for one activity record.
type CalculationResult struct {
	ID           string             `json:"id"`
	CalculatedAt time.Time          `json:"calculatedAt"`
	Calculation  Calculation        `json:"calculation"`
	Factor       FactorSummary      `json:"factor"`
	Category     CategorySummary    `json:"category"`
	Quality      quality.Assessment `json:"quality"`
}

// QualitySummary aggregates quality ratings across a result set.
type QualitySummary struct {
	AverageConfidence int `json:"averageConfidence"`
	HighCount         int `json:"highQualityCount"`
	MediumCount       int `json:"mediumQualityCount"`
	LowCount          int `json:"lowQualityCount"`
}

// Summary is a cross-cutting fold over a set of calculation results.
type Summary struct {
	TotalEmissions    float64            `json:"totalEmissions"`
	ScopeBreakdown    map[int]float64    `json:"scopeBreakdown"`
	CategoryBreakdown map[string]float64 `json:"categoryBreakdown"`
	Quality           QualitySummary     `json:"qualityAssessment"`
}
