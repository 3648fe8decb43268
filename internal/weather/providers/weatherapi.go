package providers

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"resty.dev/v3"

	"github.com/i474232898/weather-gateway/internal/metrics"
	"github.com/i474232898/weather-gateway/internal/weather"
)

// DefaultWeatherAPIBaseURL is the public WeatherAPI.com v1 endpoint.
const DefaultWeatherAPIBaseURL = "https://api.weatherapi.com/v1"

// WeatherAPIProvider implements the weather.Provider interface for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	metrics *metrics.Metrics
}

// NewWeatherAPIProvider creates a provider. An empty baseURL selects the
// public endpoint; m may be nil.
func NewWeatherAPIProvider(client *resty.Client, baseURL, apiKey string, m *metrics.Metrics) *WeatherAPIProvider {
	if baseURL == "" {
		baseURL = DefaultWeatherAPIBaseURL
	}

	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: DefaultBackoff,
		},
		circuit: newCircuitBreaker("weatherapi"),
		metrics: m,
	}
}

// WithBackoff replaces the retry policy.
func (p *WeatherAPIProvider) WithBackoff(b BackoffConfig) *WeatherAPIProvider {
	p.httpCfg.Backoff = b
	return p
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

// Fetch calls current.json for q.Days == 0 and forecast.json otherwise.
// Client-error bodies are returned as documents so that the caller's
// validation decides how to report them.
func (p *WeatherAPIProvider) Fetch(ctx context.Context, q weather.Query) (weather.Document, error) {
	if p.apiKey == "" {
		return nil, weather.ErrAPIKeyMissing
	}

	endpoint := "current.json"
	params := map[string]string{
		"key": p.apiKey,
		"q":   q.Location,
	}
	if q.Days > 0 {
		endpoint = "forecast.json"
		params["days"] = strconv.Itoa(q.Days)
	}

	buildRequest := func() *resty.Request {
		return p.httpCfg.Client.R().
			SetHeader("Accept", "application/json").
			SetQueryParams(params)
	}

	start := time.Now()
	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest, p.baseURL+"/"+endpoint)
	if err != nil {
		p.metrics.ObserveUpstream(endpoint, "error", time.Since(start))
		return nil, err
	}

	outcome := "ok"
	if resp.IsError() {
		outcome = "client_error"
		log.Printf("INFO: %s returned %s for %q", p.name, resp.Status(), q.Location)
	}
	p.metrics.ObserveUpstream(endpoint, outcome, time.Since(start))

	return decodeDocument(resp.Bytes())
}
