package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// lookup service.
type Metrics struct {
	LookupsTotal    *prometheus.CounterVec // labels: outcome={success,not_found,no_conditions,upstream_error,empty_input}
	LookupDuration  prometheus.Histogram
	LookupsInFlight prometheus.Gauge

	// Suggestion (typeahead) metrics.
	SuggestionRequests   *prometheus.CounterVec // labels: outcome={success,empty,error}
	SuggestionsDiscarded prometheus.Counter     // stale responses dropped by the sequence guard

	// Upstream collaborator metrics.
	UpstreamDuration *prometheus.HistogramVec // labels: collaborator={geocode,weather}
	GeocodeCache     *prometheus.CounterVec   // labels: result={hit,miss}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		LookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_lookup",
			Name:      "lookups_total",
			Help:      "Completed lookups by terminal outcome.",
		}, []string{"outcome"}),
		LookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_lookup",
			Name:      "lookup_duration_seconds",
			Help:      "Duration of a complete geocode-then-weather lookup.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		LookupsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_lookup",
			Name:      "lookups_in_flight",
			Help:      "Number of lookups currently awaiting upstream responses.",
		}),
		SuggestionRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_lookup",
			Name:      "suggestion_requests_total",
			Help:      "Typeahead suggestion fetches by outcome.",
		}, []string{"outcome"}),
		SuggestionsDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_lookup",
			Name:      "suggestions_discarded_total",
			Help:      "Suggestion responses dropped because a newer request was issued.",
		}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weather_lookup",
			Name:      "upstream_duration_seconds",
			Help:      "Open-Meteo API request duration by collaborator.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"collaborator"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_lookup",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
	}

	prometheus.MustRegister(
		m.LookupsTotal,
		m.LookupDuration,
		m.LookupsInFlight,
		m.SuggestionRequests,
		m.SuggestionsDiscarded,
		m.UpstreamDuration,
		m.GeocodeCache,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		LookupsTotal:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_lookup", Name: "lookups_total"}, []string{"outcome"}),
		LookupDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_lookup", Name: "lookup_duration_seconds"}),
		LookupsInFlight:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "weather_lookup", Name: "lookups_in_flight"}),
		SuggestionRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_lookup", Name: "suggestion_requests_total"}, []string{"outcome"}),
		SuggestionsDiscarded: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_lookup", Name: "suggestions_discarded_total"}),
		UpstreamDuration:     prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "weather_lookup", Name: "upstream_duration_seconds"}, []string{"collaborator"}),
		GeocodeCache:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_lookup", Name: "geocode_cache_total"}, []string{"result"}),
	}
}
