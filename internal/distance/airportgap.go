package distance

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public airport distance API endpoint.
const DefaultBaseURL = "https://airportgap.com/api"

// maxResponseBytes bounds the response body read from the lookup service.
const maxResponseBytes = 1 << 20

// AirportGapClient resolves distances via the airportgap.com API. One
// request is made per resolution; there is no retry and no client-side
// timeout beyond what the injected http.Client enforces.
type AirportGapClient struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewAirportGapClient creates a client. An empty baseURL selects
// DefaultBaseURL; a nil httpClient selects http.DefaultClient, in which
// case timeout ownership falls to the caller's context.
func NewAirportGapClient(baseURL string, httpClient *http.Client, logger zerolog.Logger) *AirportGapClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &AirportGapClient{baseURL: baseURL, http: httpClient, logger: logger}
}

// distanceResponse mirrors the relevant part of the API payload.
type distanceResponse struct {
	Data struct {
		Attributes struct {
			Kilometers float64 `json:"kilometers"`
		} `json:"attributes"`
	} `json:"data"`
}

// Distance performs a single lookup of the origin/destination pair.
func (c *AirportGapClient) Distance(ctx context.Context, origin, destination string) (float64, error) {
	endpoint := fmt.Sprintf("%s/airports/distance?from=%s&to=%s",
		c.baseURL, url.QueryEscape(origin), url.QueryEscape(destination))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build distance request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("distance lookup %s-%s: %w", origin, destination, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("distance lookup %s-%s: unexpected status %d", origin, destination, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, fmt.Errorf("read distance response: %w", err)
	}

	var parsed distanceResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("parse distance response: %w", err)
	}

	km := parsed.Data.Attributes.Kilometers
	if km <= 0 {
		return 0, fmt.Errorf("distance lookup %s-%s: invalid kilometers in response", origin, destination)
	}

	c.logger.Debug().
		Str("origin", origin).
		Str("destination", destination).
		Float64("kilometers", km).
		Msg("distance resolved via lookup service")
	return km, nil
}
