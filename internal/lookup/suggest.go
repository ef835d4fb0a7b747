package lookup

import (
	"context"
	"log/slog"

	"github.com/citywx/weather-lookup/internal/domain"
	"github.com/citywx/weather-lookup/internal/observability"
)

// SuggestionProvider fetches typeahead candidates for a partial city name.
// It is a background convenience: any failure is logged and swallowed, and
// the caller sees an empty list instead of an error.
type SuggestionProvider struct {
	geocoder domain.Geocoder
	limit    int
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewSuggestionProvider creates a provider capped at limit results per query.
func NewSuggestionProvider(geocoder domain.Geocoder, limit int, logger *slog.Logger, metrics *observability.Metrics) *SuggestionProvider {
	return &SuggestionProvider{
		geocoder: geocoder,
		limit:    limit,
		logger:   logger,
		metrics:  metrics,
	}
}

// Fetch returns 0..limit candidates for the partial name. Zero matches is
// an empty list, not an error; a failed fetch also degrades to an empty list.
func (p *SuggestionProvider) Fetch(ctx context.Context, partial string) []domain.CandidateLocation {
	candidates, err := p.geocoder.Search(ctx, partial, p.limit)
	if err != nil {
		p.logger.Warn("suggestion fetch failed", "partial", partial, "error", err)
		p.metrics.SuggestionRequests.WithLabelValues("error").Inc()
		return nil
	}
	if len(candidates) == 0 {
		p.metrics.SuggestionRequests.WithLabelValues("empty").Inc()
		return nil
	}
	p.metrics.SuggestionRequests.WithLabelValues("success").Inc()
	return candidates
}
