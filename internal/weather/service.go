package weather

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/i474232898/weather-gateway/internal/metrics"
)

// Service resolves preferences, calls the provider and normalizes the result.
type Service struct {
	provider   Provider
	resolver   *Resolver
	normalizer *Normalizer
	metrics    *metrics.Metrics
}

// NewService creates a new Service. m may be nil.
func NewService(provider Provider, resolver *Resolver, normalizer *Normalizer, m *metrics.Metrics) *Service {
	return &Service{
		provider:   provider,
		resolver:   resolver,
		normalizer: normalizer,
		metrics:    m,
	}
}

// Request is one weather lookup.
type Request struct {
	Params  Params
	Session Session
	Days    int
}

// Weather fetches and normalizes weather for the effective preferences of req.
func (s *Service) Weather(ctx context.Context, req Request) (*Response, error) {
	prefs := s.resolver.Resolve(req.Params, req.Session)

	log.Printf("DEBUG: weather lookup for %q (days=%d, temp=%s, speed=%s)", prefs.Location, req.Days, prefs.TempUnit, prefs.SpeedUnit)

	raw, err := s.provider.Fetch(ctx, Query{Location: prefs.Location, Days: req.Days})
	if err != nil {
		if errors.Is(err, ErrAPIKeyMissing) {
			log.Printf("ERROR: provider %s has no API key configured", s.provider.Name())
			return nil, err
		}
		log.Printf("ERROR: provider %s fetch failed for %q: %v", s.provider.Name(), prefs.Location, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := s.normalizer.Normalize(raw, prefs, req.Params.Raw)
	switch {
	case errors.Is(err, ErrMissingLocation):
		s.metrics.CountNormalize("missing_location")
		return nil, err
	case errors.Is(err, ErrMissingCurrent):
		s.metrics.CountNormalize("missing_current")
		return nil, err
	case err != nil:
		s.metrics.CountNormalize("error")
		return nil, err
	}

	s.metrics.CountNormalize("ok")
	return resp, nil
}

// SetLocation persists a location preference.
func (s *Service) SetLocation(session Session, location string) error {
	err := s.resolver.SetLocation(session, location)
	s.metrics.CountPreferenceWrite("location", result(err))
	return err
}

// SetUnits persists unit preferences.
func (s *Service) SetUnits(session Session, temp, speed string) error {
	err := s.resolver.SetUnits(session, temp, speed)
	s.metrics.CountPreferenceWrite("units", result(err))
	return err
}

func result(err error) string {
	var vErr *ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &vErr):
		return "invalid"
	default:
		return "error"
	}
}
