// Package domain models the city weather lookup: candidate locations from
// forward geocoding, current conditions for a coordinate pair, and the pure
// presentation mapping from WMO weather codes to display data.
//
// # Data Sources
//
// Locations come from the Open-Meteo geocoding API
// (https://geocoding-api.open-meteo.com/v1/search), queried by free-text
// name with a result cap: 1 for an exact lookup, up to 5 for typeahead
// suggestions. Current conditions come from the Open-Meteo forecast API
// (https://api.open-meteo.com/v1/forecast) with current_weather=true and
// timezone=auto, so the observation timestamp is local to the looked-up
// place rather than UTC.
//
// # Weather Codes
//
// The weathercode field is a WMO 4677 code: a small integer enumerating a
// discrete condition category. Only a fixed subset is mapped to a
// description and icon (see [ConditionForCode]); anything outside that
// subset renders without either. The background theme is derived from the
// same code by range (see [ThemeForCode]):
//
//	0–3    clear
//	45–48  fog
//	51–67  rain
//	71–77  snow
//	≥95    storm
//	other  clear (default, also used before any lookup)
//
// Codes 68–70 fall through to the clear default. That gap is intentional
// and matches the shipped range table; widening rain's upper bound would
// change themes for freezing-rain codes that were never styled.
package domain
