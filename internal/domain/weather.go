package domain

import (
	"context"
	"errors"
)

// ErrNoCurrentConditions is returned by a WeatherProvider when the upstream
// response arrived intact but carried no current-conditions payload.
var ErrNoCurrentConditions = errors.New("response has no current conditions")

// CurrentConditions is the current-weather payload for one coordinate pair.
type CurrentConditions struct {
	TemperatureC     float64 `json:"temperature_c"`
	WindSpeedKmh     float64 `json:"windspeed_kmh"`
	WindDirectionDeg int     `json:"winddirection_deg"` // 0–360
	WeatherCode      int     `json:"weather_code"`
	ObservedAt       string  `json:"observed_at"` // ISO 8601, local to the location
}

// WeatherProvider returns current atmospheric conditions for coordinates.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (CurrentConditions, error)
}

// ResolvedWeather is the assembled result of one successful lookup:
// current conditions plus the canonical place identity from geocoding.
// A new value replaces any prior one atomically; there are no partial
// updates.
type ResolvedWeather struct {
	CityName         string  `json:"city_name"`
	CountryName      string  `json:"country_name"`
	TemperatureC     float64 `json:"temperature_c"`
	WindSpeedKmh     float64 `json:"windspeed_kmh"`
	WindDirectionDeg int     `json:"winddirection_deg"`
	WeatherCode      int     `json:"weather_code"`
	ObservedAt       string  `json:"observed_at"`
}
