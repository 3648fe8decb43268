package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/i474232898/weather-gateway/internal/weather"
)

type AppConfig struct {
	WeatherAPIKey     string `env:"WEATHER_API_KEY"`
	WeatherAPIBaseURL string `env:"WEATHER_API_BASE_URL" env-default:"https://api.weatherapi.com/v1" validate:"required,url"`

	// HTTPTimeout bounds a single outbound provider request.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" env-default:"10s" validate:"gt=0"`
	MaxRetries  int           `env:"UPSTREAM_MAX_RETRIES" env-default:"3" validate:"gte=0,lte=10"`

	// APITokens accepted as bearer tokens. Empty disables auth.
	APITokens []string `env:"API_TOKENS" env-separator:","`

	SessionTTL           time.Duration `env:"SESSION_TTL" env-default:"2h" validate:"gt=0"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" env-default:"15m" validate:"gte=1s"`
	SessionKeyLookup     string        `env:"SESSION_KEY_LOOKUP" env-default:"cookie:weather_session" validate:"required"`

	DefaultLocation  string `env:"DEFAULT_LOCATION" env-default:"Manchester, UK" validate:"required"`
	DefaultTempUnit  string `env:"DEFAULT_TEMP_UNIT" env-default:"c" validate:"oneof=c f"`
	DefaultSpeedUnit string `env:"DEFAULT_SPEED_UNIT" env-default:"mph" validate:"oneof=mph kph"`

	// TimeZone decides what "today" means when trimming forecast hours.
	TimeZone string `env:"TIME_ZONE" env-default:"Local"`

	Port string `env:"PORT" env-default:"8080" validate:"required,numeric"`
}

// Load reads configuration from an optional env file and the environment.
// A missing env file is not an error.
func Load(envFile string) (*AppConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("load %s: %w", envFile, err)
			}
			log.Printf("INFO: No %s file found; using process environment", envFile)
		}
	}

	cfg := &AppConfig{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("invalid TIME_ZONE: %w", err)
	}

	return cfg, nil
}

// Defaults returns the preference fallbacks.
func (c *AppConfig) Defaults() weather.Defaults {
	return weather.Defaults{
		Location:  c.DefaultLocation,
		TempUnit:  c.DefaultTempUnit,
		SpeedUnit: c.DefaultSpeedUnit,
	}
}

// Location resolves TimeZone.
func (c *AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}
