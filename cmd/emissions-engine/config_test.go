package main

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseConfig_Defaults(t *testing.T) {
	t.Setenv("EMISSIONS_LOG_LEVEL", "")
	t.Setenv("EMISSIONS_LOG_FORMAT", "")
	t.Setenv("EMISSIONS_CATALOG", "")
	t.Setenv("EMISSIONS_DISTANCE_API", "")
	t.Setenv("EMISSIONS_HTTP_TIMEOUT", "")

	config := parseConfig(zerolog.Nop())

	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "console", config.LogFormat)
	assert.Empty(t, config.CatalogPath)
	assert.Empty(t, config.DistanceAPI)
	assert.Equal(t, 10*time.Second, config.HTTPTimeout)
}

func TestParseConfig_Overrides(t *testing.T) {
	t.Setenv("EMISSIONS_LOG_LEVEL", "debug")
	t.Setenv("EMISSIONS_LOG_FORMAT", "json")
	t.Setenv("EMISSIONS_CATALOG", "/etc/emissions/catalog.yaml")
	t.Setenv("EMISSIONS_DISTANCE_API", "http://localhost:8080/api")
	t.Setenv("EMISSIONS_HTTP_TIMEOUT", "30s")

	config := parseConfig(zerolog.Nop())

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "/etc/emissions/catalog.yaml", config.CatalogPath)
	assert.Equal(t, "http://localhost:8080/api", config.DistanceAPI)
	assert.Equal(t, 30*time.Second, config.HTTPTimeout)
}

func TestParseConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("EMISSIONS_LOG_LEVEL", "shouty")
	t.Setenv("EMISSIONS_LOG_FORMAT", "xml")
	t.Setenv("EMISSIONS_HTTP_TIMEOUT", "soon")

	config := parseConfig(zerolog.Nop())

	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "console", config.LogFormat)
	assert.Equal(t, 10*time.Second, config.HTTPTimeout)
}

func TestParseConfig_NegativeTimeoutFallsBack(t *testing.T) {
	t.Setenv("EMISSIONS_HTTP_TIMEOUT", "-5s")

	config := parseConfig(zerolog.Nop())

	assert.Equal(t, 10*time.Second, config.HTTPTimeout)
}

func TestParseMetadata(t *testing.T) {
	meta := parseMetadata([]string{
		"travelMode=Flight",
		"roundTrip=true",
		"consumption=1000",
		"malformed",
		"=orphan",
	})

	assert.Equal(t, "Flight", meta["travelMode"])
	assert.Equal(t, true, meta["roundTrip"])
	assert.Equal(t, 1000.0, meta["consumption"])
	assert.NotContains(t, meta, "malformed")
	assert.Len(t, meta, 3)
}
