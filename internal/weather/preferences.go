package weather

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/weather-gateway/internal/common"
)

// Fallbacks used when neither the request nor the session supplies a value.
const (
	DefaultLocation  = "Manchester, UK"
	DefaultTempUnit  = "c"
	DefaultSpeedUnit = "mph"
)

// Session keys for stored preferences.
const (
	SessionLocation = "location"
	SessionTemp     = "temp"
	SessionSpeed    = "speed"
)

// Session is the caller's key-value session. Get returns "" for missing keys.
type Session interface {
	Get(key string) string
	Put(key, value string) error
}

// Defaults holds the values used when nothing else is set.
type Defaults struct {
	Location  string
	TempUnit  string
	SpeedUnit string
}

// StandardDefaults returns the built-in fallbacks.
func StandardDefaults() Defaults {
	return Defaults{
		Location:  DefaultLocation,
		TempUnit:  DefaultTempUnit,
		SpeedUnit: DefaultSpeedUnit,
	}
}

// Resolver computes effective preferences and handles preference writes.
type Resolver struct {
	defaults Defaults
	validate *validator.Validate
}

// NewResolver creates a Resolver using the given defaults.
func NewResolver(defaults Defaults) *Resolver {
	return &Resolver{
		defaults: defaults,
		validate: validator.New(),
	}
}

// Resolve applies request > session > default precedence per field.
// Values are not validated here; they are used verbatim as field suffixes.
func (r *Resolver) Resolve(params Params, session Session) Preferences {
	var stored Preferences
	if session != nil {
		stored = Preferences{
			Location:  session.Get(SessionLocation),
			TempUnit:  session.Get(SessionTemp),
			SpeedUnit: session.Get(SessionSpeed),
		}
	}

	return Preferences{
		Location:  common.FirstNonEmpty(params.Location, stored.Location, r.defaults.Location),
		TempUnit:  common.FirstNonEmpty(params.Temp, stored.TempUnit, r.defaults.TempUnit),
		SpeedUnit: common.FirstNonEmpty(params.Speed, stored.SpeedUnit, r.defaults.SpeedUnit),
	}
}

// SetLocation stores a location in the session.
func (r *Resolver) SetLocation(session Session, location string) error {
	if location == "" {
		return &ValidationError{Message: "Location not provided"}
	}
	if err := session.Put(SessionLocation, location); err != nil {
		return fmt.Errorf("save location: %w", err)
	}
	return nil
}

// SetUnits stores whichever of temp and speed is recognized.
// Unrecognized values are dropped without error; the call only fails
// when nothing was stored.
func (r *Resolver) SetUnits(session Session, temp, speed string) error {
	stored := false

	if temp = strings.ToLower(temp); temp != "" && r.validate.Var(temp, "oneof=c f") == nil {
		if err := session.Put(SessionTemp, temp); err != nil {
			return fmt.Errorf("save temp unit: %w", err)
		}
		stored = true
	}

	if speed = strings.ToLower(speed); speed != "" && r.validate.Var(speed, "oneof=mph kph") == nil {
		if err := session.Put(SessionSpeed, speed); err != nil {
			return fmt.Errorf("save speed unit: %w", err)
		}
		stored = true
	}

	if !stored {
		return &ValidationError{Message: `Units not provided. Pass parameters "temp" and "speed" to set units.`}
	}
	return nil
}
