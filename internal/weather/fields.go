package weather

import "strings"

// Fields copied as-is from any metrics object.
var plainFields = []string{
	"last_updated",
	"time",
	"condition",
	"wind_dir",
	"wind_degree",
	"humidity",
	"avghumidity",
	"cloud",
	"daily_will_it_snow",
	"will_it_snow",
	"chance_of_snow",
	"daily_chance_of_snow",
	"will_it_rain",
	"daily_will_it_rain",
	"chance_of_rain",
	"daily_chance_of_rain",
}

// Bases completed with a unit suffix.
var (
	tempBases       = []string{"temp_", "maxtemp_", "mintemp_", "avgtemp_", "feelslike_"}
	speedBases      = []string{"wind_", "maxwind_", "gust_"}
	visibilityBases = []string{"vis_", "avgvis_"}
)

// unitKey builds the provider field name for a unit-dependent metric.
func unitKey(base, unit string) string {
	return base + unit
}

// visibilityUnit derives the distance unit from the speed unit.
func visibilityUnit(speedUnit string) string {
	if strings.HasPrefix(speedUnit, "k") {
		return "km"
	}
	return "miles"
}

// AllowedFields returns the full allow-list for the given preferences.
func AllowedFields(prefs Preferences) []string {
	keys := make([]string, 0, len(plainFields)+len(tempBases)+len(speedBases)+len(visibilityBases))
	keys = append(keys, plainFields...)
	for _, base := range tempBases {
		keys = append(keys, unitKey(base, prefs.TempUnit))
	}
	for _, base := range speedBases {
		keys = append(keys, unitKey(base, prefs.SpeedUnit))
	}
	vis := visibilityUnit(prefs.SpeedUnit)
	for _, base := range visibilityBases {
		keys = append(keys, unitKey(base, vis))
	}
	return keys
}
