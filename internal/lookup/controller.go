package lookup

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/citywx/weather-lookup/internal/domain"
	"github.com/citywx/weather-lookup/internal/observability"
)

// Controller owns the UI state and is the only writer of it. Keystrokes,
// submits, and suggestion picks arrive as events; network work runs on
// goroutines that report back under the controller lock.
//
// Both the suggestion and the lookup paths carry a monotonically increasing
// sequence number, and a response is discarded unless its sequence is still
// the latest issued. Without the guard, a stale out-of-order response could
// overwrite a fresher one; with it, the later write wins deterministically.
type Controller struct {
	provider *SuggestionProvider
	resolver *Resolver
	logger   *slog.Logger
	metrics  *observability.Metrics

	clock    clockwork.Clock
	debounce time.Duration
	minChars int

	mu          sync.Mutex
	query       string
	suggestions []domain.CandidateLocation
	status      Status
	errMsg      string
	result      *domain.ResolvedWeather
	pending     clockwork.Timer // debounce timer for the next suggestion fetch

	suggestSeq atomic.Uint64
	lookupSeq  atomic.Uint64

	baseCtx context.Context
	cancel  context.CancelFunc
	closed  atomic.Bool
}

// ControllerOptions configures typeahead behaviour.
type ControllerOptions struct {
	// MinChars is the minimum query rune length that triggers a
	// suggestion fetch.
	MinChars int
	// Debounce delays the suggestion fetch after a keystroke; zero fires
	// immediately.
	Debounce time.Duration
	// Clock drives the debounce timer. Nil means the real clock.
	Clock clockwork.Clock
}

// NewController creates a Controller in the Idle state.
func NewController(provider *SuggestionProvider, resolver *Resolver, opts ControllerOptions, logger *slog.Logger, metrics *observability.Metrics) *Controller {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	minChars := opts.MinChars
	if minChars <= 0 {
		minChars = 3
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		provider: provider,
		resolver: resolver,
		logger:   logger,
		metrics:  metrics,
		clock:    clock,
		debounce: opts.Debounce,
		minChars: minChars,
		status:   StatusIdle,
		baseCtx:  ctx,
		cancel:   cancel,
	}
}

// OnTextChange stores the new text verbatim, clears any error and the
// current suggestion list, and schedules a debounced suggestion fetch when
// the text is long enough. Short text makes no network call.
func (c *Controller) OnTextChange(text string) {
	c.mu.Lock()
	c.query = text
	c.suggestions = nil
	if c.status == StatusError {
		c.status = StatusIdle
		c.errMsg = ""
	}
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.mu.Unlock()

	// Bump even below the threshold so an in-flight fetch for older text
	// cannot repopulate the list we just cleared.
	seq := c.suggestSeq.Add(1)

	if utf8.RuneCountInString(text) < c.minChars {
		return
	}

	if c.debounce <= 0 {
		go c.fetchSuggestions(text, seq)
		return
	}

	c.mu.Lock()
	c.pending = c.clock.AfterFunc(c.debounce, func() {
		c.fetchSuggestions(text, seq)
	})
	c.mu.Unlock()
}

// OnSuggestionPick overwrites the query with the picked name and clears the
// suggestion list. It does not submit.
func (c *Controller) OnSuggestionPick(name string) {
	c.mu.Lock()
	c.query = name
	c.suggestions = nil
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.mu.Unlock()
	c.suggestSeq.Add(1)
}

// OnSubmit validates the current query and starts a lookup. Empty or
// whitespace-only text yields the validation error without any network
// call. Otherwise the state enters Loading and the two-stage lookup runs on
// a goroutine; only the latest submission's outcome is applied.
func (c *Controller) OnSubmit() {
	c.mu.Lock()
	city := strings.TrimSpace(c.query)
	c.suggestions = nil
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}

	if city == "" {
		c.status = StatusError
		c.errMsg = MsgEmptyInput
		c.result = nil
		c.mu.Unlock()
		c.suggestSeq.Add(1)
		c.metrics.LookupsTotal.WithLabelValues("empty_input").Inc()
		return
	}

	seq := c.lookupSeq.Add(1)
	c.status = StatusLoading
	c.errMsg = ""
	c.result = nil
	c.mu.Unlock()
	c.suggestSeq.Add(1)

	go c.runLookup(city, seq)
}

// Snapshot returns a consistent copy of the UI state with presentation
// fields derived from the current weather code.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Query:       c.query,
		Suggestions: append([]domain.CandidateLocation(nil), c.suggestions...),
		Status:      c.status,
		Loading:     c.status == StatusLoading,
		Error:       c.errMsg,
		Theme:       domain.ThemeClear,
	}
	if c.result != nil {
		result := *c.result
		snap.Weather = &result
		snap.Theme = domain.ThemeForCode(result.WeatherCode)
		if cond, ok := domain.ConditionForCode(result.WeatherCode); ok {
			snap.Condition = &cond
		}
	}
	return snap
}

// CheckReadiness reports ready until shutdown has begun.
func (c *Controller) CheckReadiness(_ context.Context) error {
	if c.closed.Load() {
		return errors.New("controller is shut down")
	}
	return nil
}

// Close cancels in-flight collaborator calls and marks the controller
// unready. Safe to call more than once.
func (c *Controller) Close() {
	c.closed.Store(true)
	c.cancel()
}

func (c *Controller) fetchSuggestions(text string, seq uint64) {
	candidates := c.provider.Fetch(c.baseCtx, text)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.suggestSeq.Load() {
		c.metrics.SuggestionsDiscarded.Inc()
		c.logger.Debug("stale suggestion response discarded", "partial", text)
		return
	}
	c.suggestions = candidates
}

func (c *Controller) runLookup(city string, seq uint64) {
	lookupID := uuid.NewString()
	start := time.Now()

	c.metrics.LookupsInFlight.Inc()
	c.logger.Info("lookup started", "lookup_id", lookupID, "city", city)

	result, err := c.resolver.Resolve(c.baseCtx, city)

	c.metrics.LookupsInFlight.Dec()
	c.metrics.LookupDuration.Observe(time.Since(start).Seconds())
	c.metrics.LookupsTotal.WithLabelValues(outcomeLabel(err)).Inc()

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.lookupSeq.Load() {
		c.logger.Debug("stale lookup outcome discarded", "lookup_id", lookupID, "city", city)
		return
	}

	if err != nil {
		c.status = StatusError
		c.errMsg = UserMessage(err)
		c.result = nil
		c.logger.Warn("lookup failed", "lookup_id", lookupID, "city", city, "error", err)
		return
	}

	c.status = StatusSuccess
	c.errMsg = ""
	c.result = &result
	c.logger.Info("lookup succeeded",
		"lookup_id", lookupID,
		"city", result.CityName,
		"country", result.CountryName,
		"weather_code", result.WeatherCode,
	)
}
