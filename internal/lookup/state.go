package lookup

import (
	"encoding/json"

	"github.com/citywx/weather-lookup/internal/domain"
)

// Status is the lookup state machine phase. Exactly one is active at a
// time: Error and Success are mutually exclusive, and both imply the
// loading flag is down.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	default:
		return "idle"
	}
}

// MarshalJSON renders the status as its lowercase name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Snapshot is a consistent copy of the whole UI state, taken under the
// controller lock. Presentation fields (condition, theme) are derived from
// the weather code at snapshot time so callers never map codes themselves.
type Snapshot struct {
	Query       string                     `json:"query"`
	Suggestions []domain.CandidateLocation `json:"suggestions"`
	Status      Status                     `json:"status"`
	Loading     bool                       `json:"loading"`
	Error       string                     `json:"error,omitempty"`
	Weather     *domain.ResolvedWeather    `json:"weather,omitempty"`
	Condition   *domain.Condition          `json:"condition,omitempty"`
	Theme       domain.Theme               `json:"theme"`
}
