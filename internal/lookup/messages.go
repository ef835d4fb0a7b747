package lookup

import (
	"errors"

	"github.com/citywx/weather-lookup/internal/domain"
)

// User-visible messages for terminal lookup outcomes. These are display
// strings, not error identities; classification happens via the sentinel
// errors below.
const (
	MsgEmptyInput      = "Please enter a city name."
	MsgUpstreamFailure = "Unable to fetch weather data. Please try again later."
	MsgCityNotFound    = "City not found. Try a different name."
	MsgNoConditions    = "Weather data not available for this location."
)

// ErrCityNotFound is returned when geocoding succeeds but yields no match.
var ErrCityNotFound = errors.New("no geocoding match for city")

// UserMessage maps a resolver error to the message shown to the user.
// Transport failures from either collaborator are intentionally
// indistinguishable.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrCityNotFound):
		return MsgCityNotFound
	case errors.Is(err, domain.ErrNoCurrentConditions):
		return MsgNoConditions
	default:
		return MsgUpstreamFailure
	}
}

// outcomeLabel classifies a resolver error for the lookups_total metric.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrCityNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrNoCurrentConditions):
		return "no_conditions"
	default:
		return "upstream_error"
	}
}
