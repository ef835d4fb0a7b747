package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/citywx/weather-lookup/internal/adapter/http"
	"github.com/citywx/weather-lookup/internal/adapter/openmeteo"
	"github.com/citywx/weather-lookup/internal/config"
	"github.com/citywx/weather-lookup/internal/lookup"
	"github.com/citywx/weather-lookup/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	geocodeClient := openmeteo.NewGeocodeClient(cfg.GeocodeBaseURL, cfg.GeocodeTimeout, metrics, logger)
	geocoder := openmeteo.NewCachedGeocoder(geocodeClient, cfg.GeocodeCacheSize, metrics)
	weather := openmeteo.NewWeatherClient(cfg.WeatherBaseURL, cfg.WeatherTimeout, metrics, logger)

	provider := lookup.NewSuggestionProvider(geocoder, cfg.SuggestLimit, logger, metrics)
	resolver := lookup.NewResolver(geocoder, weather, logger)
	controller := lookup.NewController(provider, resolver, lookup.ControllerOptions{
		MinChars: cfg.SuggestMinChars,
		Debounce: cfg.SuggestDebounce,
	}, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, controller, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	logger.Info("weather lookup service started",
		"addr", cfg.HTTPAddr,
		"geocode_cache_size", cfg.GeocodeCacheSize,
		"suggest_limit", cfg.SuggestLimit,
		"suggest_debounce", cfg.SuggestDebounce,
	)

	<-ctx.Done()
	logger.Info("shutting down")

	controller.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
