package domain

// Condition is the display pair for a known weather code.
type Condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Theme names the visual background bucket for a weather code.
type Theme string

const (
	ThemeClear Theme = "clear"
	ThemeFog   Theme = "fog"
	ThemeRain  Theme = "rain"
	ThemeSnow  Theme = "snow"
	ThemeStorm Theme = "storm"
)

// conditionByCode maps the supported WMO codes to display data. Codes
// outside this table render with no description or icon.
var conditionByCode = map[int]Condition{
	0:  {Description: "Clear sky", Icon: "☀️"},
	1:  {Description: "Mainly clear", Icon: "🌤️"},
	2:  {Description: "Partly cloudy", Icon: "⛅"},
	3:  {Description: "Overcast", Icon: "☁️"},
	45: {Description: "Fog", Icon: "🌫️"},
	48: {Description: "Depositing rime fog", Icon: "🌫️"},
	51: {Description: "Light drizzle", Icon: "🌦️"},
	53: {Description: "Moderate drizzle", Icon: "🌦️"},
	55: {Description: "Dense drizzle", Icon: "🌧️"},
	61: {Description: "Slight rain", Icon: "🌧️"},
	63: {Description: "Moderate rain", Icon: "🌧️"},
	65: {Description: "Heavy rain", Icon: "🌧️"},
	71: {Description: "Slight snow fall", Icon: "🌨️"},
	73: {Description: "Moderate snow fall", Icon: "🌨️"},
	75: {Description: "Heavy snow fall", Icon: "❄️"},
	95: {Description: "Thunderstorm", Icon: "⛈️"},
}

// ConditionForCode looks up the display pair for a weather code.
// The second return value is false for unmapped codes.
func ConditionForCode(code int) (Condition, bool) {
	c, ok := conditionByCode[code]
	return c, ok
}

// ThemeForCode buckets a weather code into a background theme. Unmapped
// codes, including the 68–70 gap between rain and snow, fall back to
// ThemeClear.
func ThemeForCode(code int) Theme {
	switch {
	case code >= 0 && code <= 3:
		return ThemeClear
	case code >= 45 && code <= 48:
		return ThemeFog
	case code >= 51 && code <= 67:
		return ThemeRain
	case code >= 71 && code <= 77:
		return ThemeSnow
	case code >= 95:
		return ThemeStorm
	default:
		return ThemeClear
	}
}
