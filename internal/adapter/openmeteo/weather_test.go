package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/citywx/weather-lookup/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeatherClient(baseURL string) *WeatherClient {
	return &WeatherClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		metrics:    testMetrics(),
		logger:     discardLogger(),
	}
}

func TestWeatherClient_Current_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "51.5085", r.URL.Query().Get("latitude"))
		assert.Equal(t, "-0.1257", r.URL.Query().Get("longitude"))
		assert.Equal(t, "true", r.URL.Query().Get("current_weather"))
		assert.Equal(t, "auto", r.URL.Query().Get("timezone"))

		resp := forecastResponse{
			CurrentWeather: &currentWeather{
				Temperature:   17.3,
				WindSpeed:     12.6,
				WindDirection: 230.0,
				WeatherCode:   61,
				Time:          "2026-08-26T14:00",
			},
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := testWeatherClient(srv.URL)
	conditions, err := c.Current(context.Background(), 51.50853, -0.12574)
	require.NoError(t, err)

	assert.Equal(t, 17.3, conditions.TemperatureC)
	assert.Equal(t, 12.6, conditions.WindSpeedKmh)
	assert.Equal(t, 230, conditions.WindDirectionDeg)
	assert.Equal(t, 61, conditions.WeatherCode)
	assert.Equal(t, "2026-08-26T14:00", conditions.ObservedAt)
}

func TestWeatherClient_Current_MissingPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"latitude":51.5,"longitude":-0.12}`))
	}))
	defer srv.Close()

	c := testWeatherClient(srv.URL)
	_, err := c.Current(context.Background(), 51.5, -0.12)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoCurrentConditions))
}

func TestWeatherClient_Current_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream unavailable`))
	}))
	defer srv.Close()

	c := testWeatherClient(srv.URL)
	_, err := c.Current(context.Background(), 51.5, -0.12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.False(t, errors.Is(err, domain.ErrNoCurrentConditions))
}

func TestWeatherClient_Current_RoundsWindDirection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"current_weather":{"temperature":5.0,"windspeed":3.2,"winddirection":187.6,"weathercode":2,"time":"2026-08-26T09:00"}}`))
	}))
	defer srv.Close()

	c := testWeatherClient(srv.URL)
	conditions, err := c.Current(context.Background(), 48.85, 2.35)
	require.NoError(t, err)
	assert.Equal(t, 188, conditions.WindDirectionDeg)
}

func TestWeatherClient_Current_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := &WeatherClient{
		httpClient: &http.Client{Timeout: 50 * time.Millisecond},
		baseURL:    srv.URL,
		metrics:    testMetrics(),
		logger:     discardLogger(),
	}

	_, err := c.Current(context.Background(), 51.5, -0.12)
	require.Error(t, err)
}
