package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-gateway/internal/metrics"
)

type stubProvider struct {
	doc     Document
	err     error
	queries []Query
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Fetch(_ context.Context, q Query) (Document, error) {
	p.queries = append(p.queries, q)
	return p.doc, p.err
}

func newTestService(t *testing.T, p Provider) *Service {
	t.Helper()
	m, err := metrics.New()
	require.NoError(t, err)
	return NewService(p, NewResolver(StandardDefaults()), fixedNormalizer(), m)
}

func TestServiceWeatherUsesResolvedPreferences(t *testing.T) {
	p := &stubProvider{doc: forecastDocument()}
	svc := newTestService(t, p)

	resp, err := svc.Weather(context.Background(), Request{
		Params:  Params{Speed: "kph"},
		Session: memSession{"location": "Paris", "temp": "f"},
		Days:    DaysThree,
	})
	require.NoError(t, err)

	require.Len(t, p.queries, 1)
	assert.Equal(t, Query{Location: "Paris", Days: 3}, p.queries[0])
	assert.Contains(t, resp.Data.Current, "temp_f")
	assert.Contains(t, resp.Data.Current, "wind_kph")
	assert.Len(t, resp.Data.Forecast, 2)
	assert.Nil(t, resp.RawData)
}

func TestServiceWeatherRaw(t *testing.T) {
	svc := newTestService(t, &stubProvider{doc: currentDocument()})

	resp, err := svc.Weather(context.Background(), Request{Params: Params{Raw: true}, Days: DaysCurrent})
	require.NoError(t, err)

	assert.Equal(t, currentDocument(), resp.RawData)
}

func TestServiceWeatherErrors(t *testing.T) {
	tests := []struct {
		name    string
		p       *stubProvider
		want    error
		message string
	}{
		{
			name:    "api key missing",
			p:       &stubProvider{err: ErrAPIKeyMissing},
			want:    ErrAPIKeyMissing,
			message: "API key missing.",
		},
		{
			name:    "transport failure",
			p:       &stubProvider{err: errors.New("dial tcp: refused")},
			want:    ErrFetchFailed,
			message: "Could not fetch weather details.",
		},
		{
			name:    "unknown location",
			p:       &stubProvider{doc: Document{"error": map[string]any{"code": 1006}}},
			want:    ErrMissingLocation,
			message: "Invalid location provided.",
		},
		{
			name:    "no current block",
			p:       &stubProvider{doc: Document{"location": map[string]any{"name": "Paris"}}},
			want:    ErrMissingCurrent,
			message: "Could not fetch weather details.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.p)

			resp, err := svc.Weather(context.Background(), Request{Days: DaysToday})

			assert.Nil(t, resp)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.message, Message(err))
			assert.NotContains(t, Message(err), "refused")
		})
	}
}

func TestServicePreferenceWrites(t *testing.T) {
	svc := newTestService(t, &stubProvider{})
	s := memSession{}

	require.NoError(t, svc.SetLocation(s, "Berlin"))
	require.NoError(t, svc.SetUnits(s, "F", "nope"))

	err := svc.SetUnits(s, "", "")
	assert.Equal(t, `Units not provided. Pass parameters "temp" and "speed" to set units.`, Message(err))

	assert.Equal(t, memSession{"location": "Berlin", "temp": "f"}, s)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "Location not provided", Message(&ValidationError{Message: "Location not provided"}))
}
