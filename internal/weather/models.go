package weather

// Document is a provider JSON payload kept as a schema-less tree.
// Nested objects decode as map[string]any, arrays as []any.
type Document map[string]any

// Preferences are the effective location and units for one request.
type Preferences struct {
	Location  string `json:"location"`
	TempUnit  string `json:"temp"`
	SpeedUnit string `json:"speed"`
}

// Params carries the optional per-request overrides.
type Params struct {
	Location string
	Temp     string
	Speed    string

	// Raw requests the untouched provider payload alongside the reduced one.
	Raw bool
}

// Summary is a reduced weather-metrics object keyed by provider field names.
type Summary map[string]any

// DaySummary is one reduced forecast day.
type DaySummary struct {
	Date string    `json:"date"`
	Day  Summary   `json:"day"`
	Hour []Summary `json:"hour,omitempty"`
}

// Data is the reduced payload under the "data" key.
type Data struct {
	Location Summary      `json:"location"`
	Current  Summary      `json:"current"`
	Forecast []DaySummary `json:"forecast,omitempty"`
}

// Response is the success envelope returned to callers.
type Response struct {
	Success bool     `json:"success"`
	Data    Data     `json:"data"`
	RawData Document `json:"rawData,omitempty"`
}

// Query identifies a provider call. Days == 0 selects current conditions.
type Query struct {
	Location string
	Days     int
}

// Forecast lengths exposed by the API.
const (
	DaysCurrent = 0
	DaysToday   = 1
	DaysThree   = 3
	DaysSeven   = 7
)
