package domain

import "context"

// CandidateLocation is a single forward-geocoding match for a (possibly
// partial) city name. Candidates are ephemeral: the suggestion list is
// rebuilt on every qualifying keystroke and discarded on submit or pick.
type CandidateLocation struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder resolves free-text place names to candidate locations.
type Geocoder interface {
	// Search returns up to limit matches for name, best match first.
	// A name with no matches yields an empty slice and a nil error.
	Search(ctx context.Context, name string, limit int) ([]CandidateLocation, error)
}
