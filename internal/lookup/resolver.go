package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/citywx/weather-lookup/internal/domain"
)

// Resolver orchestrates the two-stage lookup: forward geocode the city name
// for a single best match, then fetch current conditions for that match's
// coordinates. The weather collaborator accepts only coordinates, so the
// geocode stage is a mandatory precondition and the two calls cannot run in
// parallel.
type Resolver struct {
	geocoder domain.Geocoder
	weather  domain.WeatherProvider
	logger   *slog.Logger
}

// NewResolver creates a Resolver over the two collaborators.
func NewResolver(geocoder domain.Geocoder, weather domain.WeatherProvider, logger *slog.Logger) *Resolver {
	return &Resolver{
		geocoder: geocoder,
		weather:  weather,
		logger:   logger,
	}
}

// Resolve performs one lookup attempt for a city name. Failures are
// terminal for the attempt; there is no retry. The returned error wraps
// ErrCityNotFound when geocoding finds nothing, domain.ErrNoCurrentConditions
// when the weather response lacks a current-conditions payload, and the raw
// transport error otherwise.
func (r *Resolver) Resolve(ctx context.Context, city string) (domain.ResolvedWeather, error) {
	matches, err := r.geocoder.Search(ctx, city, 1)
	if err != nil {
		return domain.ResolvedWeather{}, fmt.Errorf("geocode city: %w", err)
	}
	if len(matches) == 0 {
		return domain.ResolvedWeather{}, fmt.Errorf("geocode city %q: %w", city, ErrCityNotFound)
	}

	best := matches[0]
	r.logger.Debug("city resolved",
		"city", city,
		"match", best.Name,
		"country", best.Country,
		"lat", best.Latitude,
		"lon", best.Longitude,
	)

	conditions, err := r.weather.Current(ctx, best.Latitude, best.Longitude)
	if err != nil {
		return domain.ResolvedWeather{}, fmt.Errorf("fetch current weather: %w", err)
	}

	return domain.ResolvedWeather{
		CityName:         best.Name,
		CountryName:      best.Country,
		TemperatureC:     conditions.TemperatureC,
		WindSpeedKmh:     conditions.WindSpeedKmh,
		WindDirectionDeg: conditions.WindDirectionDeg,
		WeatherCode:      conditions.WeatherCode,
		ObservedAt:       conditions.ObservedAt,
	}, nil
}
