package openmeteo

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/citywx/weather-lookup/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func testMetrics() *observability.Metrics {
	return observability.NewMetricsForTesting()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testGeocodeClient(baseURL string) *GeocodeClient {
	return &GeocodeClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		metrics:    testMetrics(),
		logger:     discardLogger(),
	}
}

func TestGeocodeClient_Search_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "London", r.URL.Query().Get("name"))
		assert.Equal(t, "1", r.URL.Query().Get("count"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		resp := searchResponse{
			Results: []searchResult{
				{
					ID:        2643743,
					Name:      "London",
					Country:   "United Kingdom",
					Latitude:  51.50853,
					Longitude: -0.12574,
				},
			},
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := testGeocodeClient(srv.URL)
	candidates, err := c.Search(context.Background(), "London", 1)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Equal(t, int64(2643743), candidates[0].ID)
	assert.Equal(t, "London", candidates[0].Name)
	assert.Equal(t, "United Kingdom", candidates[0].Country)
	assert.Equal(t, 51.50853, candidates[0].Latitude)
	assert.Equal(t, -0.12574, candidates[0].Longitude)
}

func TestGeocodeClient_Search_MultipleMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("count"))

		resp := searchResponse{
			Results: []searchResult{
				{ID: 1, Name: "Paris", Country: "France"},
				{ID: 2, Name: "Paris", Country: "United States"},
				{ID: 3, Name: "Parise", Country: "Italy"},
			},
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := testGeocodeClient(srv.URL)
	candidates, err := c.Search(context.Background(), "Pari", 5)
	require.NoError(t, err)
	assert.Len(t, candidates, 3)
	assert.Equal(t, "France", candidates[0].Country)
}

func TestGeocodeClient_Search_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Open-Meteo omits the results key entirely when nothing matches.
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"generationtime_ms":0.5}`))
	}))
	defer srv.Close()

	c := testGeocodeClient(srv.URL)
	candidates, err := c.Search(context.Background(), "Zzzzzqx", 1)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestGeocodeClient_Search_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"reason":"internal error"}`))
	}))
	defer srv.Close()

	c := testGeocodeClient(srv.URL)
	_, err := c.Search(context.Background(), "London", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestGeocodeClient_Search_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"results": not-json`))
	}))
	defer srv.Close()

	c := testGeocodeClient(srv.URL)
	_, err := c.Search(context.Background(), "London", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestGeocodeClient_Search_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := &GeocodeClient{
		httpClient: &http.Client{Timeout: 50 * time.Millisecond},
		baseURL:    srv.URL,
		metrics:    testMetrics(),
		logger:     discardLogger(),
	}

	_, err := c.Search(context.Background(), "London", 1)
	require.Error(t, err)
}
