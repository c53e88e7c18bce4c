package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk YAML layout of a catalog.
type catalogFile struct {
	Categories []Category `yaml:"categories"`
	Factors    []Factor   `yaml:"factors"`
}

// LoadYAML parses catalog data from YAML bytes and builds a MemoryCatalog.
func LoadYAML(data []byte) (*MemoryCatalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validate(file); err != nil {
		return nil, err
	}
	return NewMemoryCatalog(file.Categories, file.Factors), nil
}

// LoadFile reads and parses a catalog YAML file.
func LoadFile(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return LoadYAML(data)
}

func validate(file catalogFile) error {
	seen := make(map[string]bool, len(file.Categories))
	for _, cat := range file.Categories {
		if cat.ID == "" {
			return fmt.Errorf("category %q: missing id", cat.Name)
		}
		if seen[cat.ID] {
			return fmt.Errorf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = true
		if cat.Scope < 1 || cat.Scope > 3 {
			return fmt.Errorf("category %q: scope must be 1, 2 or 3", cat.ID)
		}
		if cat.BaseUnit == "" {
			return fmt.Errorf("category %q: missing baseUnit", cat.ID)
		}
	}
	factorIDs := make(map[string]bool, len(file.Factors))
	for _, f := range file.Factors {
		if f.ID == "" {
			return fmt.Errorf("factor %q: missing id", f.Name)
		}
		if factorIDs[f.ID] {
			return fmt.Errorf("duplicate factor id %q", f.ID)
		}
		factorIDs[f.ID] = true
		if !seen[f.CategoryID] {
			return fmt.Errorf("factor %q: unknown category %q", f.ID, f.CategoryID)
		}
		if f.Factor < 0 {
			return fmt.Errorf("factor %q: coefficient must be non-negative", f.ID)
		}
	}
	return nil
}
