package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-gateway/internal/weather"
)

var configKeys = []string{
	"WEATHER_API_KEY", "WEATHER_API_BASE_URL", "HTTP_TIMEOUT", "UPSTREAM_MAX_RETRIES",
	"API_TOKENS", "SESSION_TTL", "SESSION_SWEEP_INTERVAL", "SESSION_KEY_LOOKUP",
	"DEFAULT_LOCATION", "DEFAULT_TEMP_UNIT", "DEFAULT_SPEED_UNIT", "TIME_ZONE", "PORT",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.WeatherAPIKey)
	assert.Equal(t, "https://api.weatherapi.com/v1", cfg.WeatherAPIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Empty(t, cfg.APITokens)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 15*time.Minute, cfg.SessionSweepInterval)
	assert.Equal(t, "cookie:weather_session", cfg.SessionKeyLookup)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, weather.StandardDefaults(), cfg.Defaults())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEATHER_API_KEY", "k")
	t.Setenv("API_TOKENS", "one,two")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("DEFAULT_LOCATION", "Leeds, UK")
	t.Setenv("DEFAULT_TEMP_UNIT", "f")
	t.Setenv("DEFAULT_SPEED_UNIT", "kph")
	t.Setenv("TIME_ZONE", "Europe/London")
	t.Setenv("PORT", "9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.WeatherAPIKey)
	assert.Equal(t, []string{"one", "two"}, cfg.APITokens)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, weather.Defaults{Location: "Leeds, UK", TempUnit: "f", SpeedUnit: "kph"}, cfg.Defaults())
	assert.Equal(t, "9090", cfg.Port)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", loc.String())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"DEFAULT_TEMP_UNIT", "k"},
		{"DEFAULT_SPEED_UNIT", "knots"},
		{"HTTP_TIMEOUT", "soon"},
		{"PORT", "http"},
		{"TIME_ZONE", "Mars/Olympus"},
		{"WEATHER_API_BASE_URL", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("WEATHER_API_KEY=from-file\nPORT=7070\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.WeatherAPIKey)
	assert.Equal(t, "7070", cfg.Port)
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}
