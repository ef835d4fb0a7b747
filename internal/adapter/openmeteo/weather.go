package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/citywx/weather-lookup/internal/domain"
	"github.com/citywx/weather-lookup/internal/observability"
)

// WeatherClient implements domain.WeatherProvider using the Open-Meteo
// forecast API with the current_weather flag.
type WeatherClient struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewWeatherClient creates an Open-Meteo current-weather client.
func NewWeatherClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *WeatherClient {
	return &WeatherClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Current fetches current conditions for the given coordinates. The
// timezone=auto flag makes the observation timestamp local to the location.
// A response without a current_weather payload returns
// domain.ErrNoCurrentConditions.
func (c *WeatherClient) Current(ctx context.Context, lat, lon float64) (domain.CurrentConditions, error) {
	params := url.Values{
		"latitude":        {formatCoord(lat)},
		"longitude":       {formatCoord(lon)},
		"current_weather": {"true"},
		"timezone":        {"auto"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.CurrentConditions{}, fmt.Errorf("create weather request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues("weather").Observe(time.Since(start).Seconds())
	if err != nil {
		return domain.CurrentConditions{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.CurrentConditions{}, fmt.Errorf("weather API error: status %d: %s", resp.StatusCode, body)
	}

	var wxResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&wxResp); err != nil {
		return domain.CurrentConditions{}, fmt.Errorf("decode weather response: %w", err)
	}

	if wxResp.CurrentWeather == nil {
		return domain.CurrentConditions{}, domain.ErrNoCurrentConditions
	}

	cw := wxResp.CurrentWeather
	conditions := domain.CurrentConditions{
		TemperatureC:     cw.Temperature,
		WindSpeedKmh:     cw.WindSpeed,
		WindDirectionDeg: int(math.Round(cw.WindDirection)),
		WeatherCode:      cw.WeatherCode,
		ObservedAt:       cw.Time,
	}

	c.logger.Debug("current weather fetched",
		"lat", lat,
		"lon", lon,
		"weather_code", conditions.WeatherCode,
		"observed_at", conditions.ObservedAt,
	)
	return conditions, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Open-Meteo forecast API response types. The current_weather object is a
// pointer so an absent payload is distinguishable from a zero-valued one.

type forecastResponse struct {
	CurrentWeather *currentWeather `json:"current_weather"`
}

type currentWeather struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   int     `json:"weathercode"`
	Time          string  `json:"time"`
}
