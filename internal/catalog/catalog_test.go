package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFactors() []Factor {
	return []Factor{
		{ID: "old-default", CategoryID: "cat", Region: RegionEgypt, Year: 2020, IsDefault: true, QualityRating: RatingHigh, Active: true},
		{ID: "new-low", CategoryID: "cat", Region: RegionEgypt, Year: 2024, QualityRating: RatingLow, Active: true},
		{ID: "new-default", CategoryID: "cat", Region: RegionEgypt, Year: 2024, IsDefault: true, QualityRating: RatingMedium, Active: true},
		{ID: "new-high", CategoryID: "cat", Region: RegionEgypt, Year: 2024, QualityRating: RatingHigh, Active: true},
		{ID: "global", CategoryID: "cat", Region: RegionGlobal, Year: 2025, QualityRating: RatingHigh, Active: true},
		{ID: "inactive", CategoryID: "cat", Region: RegionEgypt, Year: 2025, Active: false},
		{ID: "diesel", CategoryID: "cat", Region: RegionEgypt, Year: 2024, FuelType: "Diesel", Active: true},
	}
}

func TestMemoryCatalog_Factors_FilterAndSort(t *testing.T) {
	c := NewMemoryCatalog(nil, testFactors())

	got := c.Factors(Filter{CategoryID: "cat", Region: RegionEgypt, ActiveOnly: true})

	require.Len(t, got, 5)
	// Year desc, then default first, then quality rating desc.
	assert.Equal(t, "new-default", got[0].ID)
	assert.Equal(t, "new-high", got[1].ID)
	assert.Equal(t, "old-default", got[4].ID)
}

func TestMemoryCatalog_Factors_FuelTypeFilter(t *testing.T) {
	c := NewMemoryCatalog(nil, testFactors())

	got := c.Factors(Filter{CategoryID: "cat", FuelType: "Diesel", ActiveOnly: true})

	require.Len(t, got, 1)
	assert.Equal(t, "diesel", got[0].ID)
}

func TestMemoryCatalog_Factors_ExcludesInactive(t *testing.T) {
	c := NewMemoryCatalog(nil, testFactors())

	for _, f := range c.Factors(Filter{CategoryID: "cat", ActiveOnly: true}) {
		assert.True(t, f.Active, "factor %s should be active", f.ID)
	}
}

func TestMemoryCatalog_Factors_Deterministic(t *testing.T) {
	c := NewMemoryCatalog(nil, testFactors())

	first := c.Factors(Filter{CategoryID: "cat", ActiveOnly: true})
	second := c.Factors(Filter{CategoryID: "cat", ActiveOnly: true})

	assert.Equal(t, first, second)
}

func TestMemoryCatalog_CategoryByID(t *testing.T) {
	c := NewMemoryCatalog([]Category{{ID: "elec", Name: "Purchased Electricity", Scope: 2, BaseUnit: "kWh", Active: true}}, nil)

	cat, ok := c.CategoryByID("elec")
	require.True(t, ok)
	assert.Equal(t, "Purchased Electricity", cat.Name)

	_, ok = c.CategoryByID("missing")
	assert.False(t, ok)
}

func TestCategory_AllowedUnit(t *testing.T) {
	cat := Category{AllowedUnits: []AllowedUnit{
		{Unit: "kWh", ConversionToBase: 1},
		{Unit: "MWh", ConversionToBase: 1000},
	}}

	u, ok := cat.AllowedUnit("MWh")
	require.True(t, ok)
	assert.Equal(t, 1000.0, u.ConversionToBase)

	_, ok = cat.AllowedUnit("GJ")
	assert.False(t, ok)
}
