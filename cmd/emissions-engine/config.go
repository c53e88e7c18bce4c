package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
	defaultHTTPTimeout = 10 * time.Second
)

// Config holds runtime settings for the emissions-engine CLI.
// CatalogPath points at a YAML catalog file; when empty the embedded seed
// catalog is used. DistanceAPI overrides the airport distance API base URL.
type Config struct {
	LogLevel    string
	LogFormat   string
	CatalogPath string
	DistanceAPI string
	HTTPTimeout time.Duration
}

// parseConfig reads EMISSIONS_* environment variables. Invalid values are
// logged and replaced with defaults rather than failing startup.
func parseConfig(logger zerolog.Logger) Config {
	config := Config{
		LogLevel:    defaultLogLevel,
		LogFormat:   defaultLogFormat,
		HTTPTimeout: defaultHTTPTimeout,
	}

	if level := os.Getenv("EMISSIONS_LOG_LEVEL"); level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil {
			config.LogLevel = strings.ToLower(level)
		} else {
			logger.Warn().Str("value", level).Msg("invalid EMISSIONS_LOG_LEVEL, using default")
		}
	}

	if format := strings.ToLower(os.Getenv("EMISSIONS_LOG_FORMAT")); format != "" {
		if format == "json" || format == "console" {
			config.LogFormat = format
		} else {
			logger.Warn().Str("value", format).Msg("invalid EMISSIONS_LOG_FORMAT, using default")
		}
	}

	config.CatalogPath = os.Getenv("EMISSIONS_CATALOG")
	config.DistanceAPI = os.Getenv("EMISSIONS_DISTANCE_API")

	if timeout := os.Getenv("EMISSIONS_HTTP_TIMEOUT"); timeout != "" {
		if parsed, err := time.ParseDuration(timeout); err == nil && parsed > 0 {
			config.HTTPTimeout = parsed
		} else {
			logger.Warn().Str("value", timeout).Msg("invalid EMISSIONS_HTTP_TIMEOUT, using default")
		}
	}

	return config
}

func newLogger(config Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if config.LogFormat == "console" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}
