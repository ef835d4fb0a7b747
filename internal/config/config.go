package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// maxSuggestLimit caps the typeahead result count; the geocoding API is
// queried for at most this many matches per keystroke.
const maxSuggestLimit = 5

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Open-Meteo collaborator endpoints. Overridable for tests and
	// self-hosted mirrors.
	GeocodeBaseURL string
	WeatherBaseURL string
	GeocodeTimeout time.Duration
	WeatherTimeout time.Duration

	// Geocoding result memoization.
	GeocodeCacheSize int

	// Typeahead behaviour.
	SuggestLimit    int
	SuggestMinChars int
	SuggestDebounce time.Duration
}

// Load reads configuration from the environment, applying defaults where
// unset. A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	// Ignore a missing .env; explicit env vars always win.
	_ = godotenv.Load()

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	geocodeTimeout, err := parseDuration("GEOCODE_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	weatherTimeout, err := parseDuration("WEATHER_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	suggestDebounce, err := parseDebounce()
	if err != nil {
		return nil, err
	}

	cacheSize, err := parsePositiveInt("GEOCODE_CACHE_SIZE", 1000)
	if err != nil {
		return nil, err
	}

	suggestLimit, err := parsePositiveInt("SUGGEST_LIMIT", maxSuggestLimit)
	if err != nil {
		return nil, err
	}
	if suggestLimit > maxSuggestLimit {
		return nil, fmt.Errorf("SUGGEST_LIMIT must be at most %d", maxSuggestLimit)
	}

	minChars, err := parsePositiveInt("SUGGEST_MIN_CHARS", 3)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		GeocodeBaseURL: envOrDefault("GEOCODE_BASE_URL", "https://geocoding-api.open-meteo.com/v1/search"),
		WeatherBaseURL: envOrDefault("WEATHER_BASE_URL", "https://api.open-meteo.com/v1/forecast"),
		GeocodeTimeout: geocodeTimeout,
		WeatherTimeout: weatherTimeout,

		GeocodeCacheSize: cacheSize,

		SuggestLimit:    suggestLimit,
		SuggestMinChars: minChars,
		SuggestDebounce: suggestDebounce,
	}

	if cfg.GeocodeBaseURL == "" {
		return nil, fmt.Errorf("GEOCODE_BASE_URL is required")
	}
	if cfg.WeatherBaseURL == "" {
		return nil, fmt.Errorf("WEATHER_BASE_URL is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

// parseDebounce allows zero, which disables debouncing entirely.
func parseDebounce() (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault("SUGGEST_DEBOUNCE", "250ms"))
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid SUGGEST_DEBOUNCE")
	}
	return d, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}
