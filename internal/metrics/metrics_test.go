package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.ObserveUpstream("current.json", "ok", 120*time.Millisecond)
	m.ObserveUpstream("current.json", "ok", 80*time.Millisecond)
	m.CountNormalize("missing_location")
	m.CountPreferenceWrite("units", "invalid")
	m.SetActiveSessions(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("current.json", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.normalizeResults.WithLabelValues("missing_location")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.preferenceWrites.WithLabelValues("units", "invalid")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.sessionsActive))

	n, err := testutil.GatherAndCount(m.Registry(), "weather_upstream_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveUpstream("forecast.json", "error", time.Second)
		m.CountNormalize("ok")
		m.CountPreferenceWrite("location", "ok")
		m.SetActiveSessions(1)
	})
}
