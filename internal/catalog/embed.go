package catalog

import (
	_ "embed"
	"sync"
)

// seedCatalogYAML is the default catalog shipped with the engine. It covers
// the fifteen GHG Protocol scope 1-3 categories and the Egyptian factor set
// (grid electricity, natural gas, petrol, diesel) plus global fallbacks.
//
//go:embed data/catalog.yaml
var seedCatalogYAML []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *MemoryCatalog
	defaultErr     error
)

// Default returns the embedded seed catalog, parsed exactly once.
func Default() (*MemoryCatalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = LoadYAML(seedCatalogYAML)
	})
	return defaultCatalog, defaultErr
}
