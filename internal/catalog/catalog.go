package catalog

import (
	"sort"
)

// Filter narrows a factor query. Zero-valued fields are ignored.
type Filter struct {
	CategoryID  string
	Region      Region
	FuelType    string
	VehicleType string
	ActiveOnly  bool
}

// Catalog is the read interface the engine depends on. Implementations
// must return deterministic, sorted results so factor selection is
// reproducible for identical catalog state.
type Catalog interface {
	// CategoryByID returns the category with the given ID.
	CategoryByID(id string) (Category, bool)

	// FactorByID returns the factor with the given ID.
	FactorByID(id string) (Factor, bool)

	// Factors returns all factors matching the filter, sorted by
	// year descending, isDefault descending, quality rating descending,
	// then ID ascending as the final tie-break.
	Factors(f Filter) []Factor
}

// MemoryCatalog is a map-backed Catalog implementation.
type MemoryCatalog struct {
	categories map[string]Category
	factorByID map[string]Factor
	factors    []Factor
}

// NewMemoryCatalog builds a MemoryCatalog from the given entries.
func NewMemoryCatalog(categories []Category, factors []Factor) *MemoryCatalog {
	c := &MemoryCatalog{
		categories: make(map[string]Category, len(categories)),
		factorByID: make(map[string]Factor, len(factors)),
		factors:    make([]Factor, len(factors)),
	}
	for _, cat := range categories {
		c.categories[cat.ID] = cat
	}
	copy(c.factors, factors)
	for _, f := range factors {
		c.factorByID[f.ID] = f
	}
	return c
}

// CategoryByID returns the category with the given ID.
func (c *MemoryCatalog) CategoryByID(id string) (Category, bool) {
	cat, ok := c.categories[id]
	return cat, ok
}

// FactorByID returns the factor with the given ID.
func (c *MemoryCatalog) FactorByID(id string) (Factor, bool) {
	f, ok := c.factorByID[id]
	return f, ok
}

// Factors returns all factors matching the filter in selection order.
func (c *MemoryCatalog) Factors(filter Filter) []Factor {
	var out []Factor
	for _, f := range c.factors {
		if matches(f, filter) {
			out = append(out, f)
		}
	}
	SortFactors(out)
	return out
}

// Categories returns all categories sorted by scope then display order.
func (c *MemoryCatalog) Categories() []Category {
	out := make([]Category, 0, len(c.categories))
	for _, cat := range c.categories {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func matches(f Factor, filter Filter) bool {
	if filter.ActiveOnly && !f.Active {
		return false
	}
	if filter.CategoryID != "" && f.CategoryID != filter.CategoryID {
		return false
	}
	if filter.Region != "" && f.Region != filter.Region {
		return false
	}
	if filter.FuelType != "" && f.FuelType != filter.FuelType {
		return false
	}
	if filter.VehicleType != "" && f.VehicleType != filter.VehicleType {
		return false
	}
	return true
}

// SortFactors orders factors by the selection tie-break chain:
// latest year first, default factors first, higher quality first.
// The ID tie-break keeps results stable when everything else is equal.
func SortFactors(factors []Factor) {
	sort.SliceStable(factors, func(i, j int) bool {
		a, b := factors[i], factors[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.IsDefault != b.IsDefault {
			return a.IsDefault
		}
		if ratingRank[a.QualityRating] != ratingRank[b.QualityRating] {
			return ratingRank[a.QualityRating] > ratingRank[b.QualityRating]
		}
		return a.ID < b.ID
	})
}
