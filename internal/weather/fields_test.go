package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitKey(t *testing.T) {
	assert.Equal(t, "temp_f", unitKey("temp_", "f"))
	assert.Equal(t, "gust_kph", unitKey("gust_", "kph"))
}

func TestVisibilityUnit(t *testing.T) {
	assert.Equal(t, "km", visibilityUnit("kph"))
	assert.Equal(t, "km", visibilityUnit("knots"))
	assert.Equal(t, "miles", visibilityUnit("mph"))
	assert.Equal(t, "miles", visibilityUnit(""))
}

func TestAllowedFieldsUnitVariants(t *testing.T) {
	fahrenheitKph := AllowedFields(Preferences{TempUnit: "f", SpeedUnit: "kph"})
	for _, k := range []string{
		"temp_f", "maxtemp_f", "mintemp_f", "avgtemp_f", "feelslike_f",
		"wind_kph", "maxwind_kph", "gust_kph", "vis_km", "avgvis_km",
	} {
		assert.Contains(t, fahrenheitKph, k)
	}
	assert.NotContains(t, fahrenheitKph, "temp_c")
	assert.NotContains(t, fahrenheitKph, "vis_miles")

	celsiusMph := AllowedFields(Preferences{TempUnit: "c", SpeedUnit: "mph"})
	for _, k := range []string{
		"temp_c", "maxtemp_c", "mintemp_c", "avgtemp_c", "feelslike_c",
		"wind_mph", "maxwind_mph", "gust_mph", "vis_miles", "avgvis_miles",
	} {
		assert.Contains(t, celsiusMph, k)
	}
	assert.NotContains(t, celsiusMph, "wind_kph")
}

func TestAllowedFieldsPlain(t *testing.T) {
	got := AllowedFields(Preferences{TempUnit: "c", SpeedUnit: "mph"})

	assert.Len(t, got, 26)
	assert.Subset(t, got, plainFields)
}
