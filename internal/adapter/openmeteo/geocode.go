// Package openmeteo implements the domain collaborator interfaces against
// the public Open-Meteo geocoding and forecast APIs.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/citywx/weather-lookup/internal/domain"
	"github.com/citywx/weather-lookup/internal/observability"
)

// GeocodeClient implements domain.Geocoder using the Open-Meteo geocoding API.
type GeocodeClient struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewGeocodeClient creates an Open-Meteo geocoding client.
func NewGeocodeClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *GeocodeClient {
	return &GeocodeClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Search returns up to limit candidate locations for a free-text name,
// best match first. No matches is an empty slice, not an error.
func (c *GeocodeClient) Search(ctx context.Context, name string, limit int) ([]domain.CandidateLocation, error) {
	params := url.Values{
		"name":     {name},
		"count":    {strconv.Itoa(limit)},
		"language": {"en"},
		"format":   {"json"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create geocode request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues("geocode").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("geocoding API error: status %d: %s", resp.StatusCode, body)
	}

	var geoResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	candidates := make([]domain.CandidateLocation, 0, len(geoResp.Results))
	for _, r := range geoResp.Results {
		candidates = append(candidates, domain.CandidateLocation{
			ID:        r.ID,
			Name:      r.Name,
			Country:   r.Country,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		})
	}

	c.logger.Debug("geocode search completed", "name", name, "limit", limit, "matches", len(candidates))
	return candidates, nil
}

// Open-Meteo geocoding API response types.

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
