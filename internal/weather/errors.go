package weather

import "errors"

var (
	// ErrMissingLocation is returned when the provider payload has no usable location object.
	ErrMissingLocation = errors.New("provider response has no location")
	// ErrMissingCurrent is returned when the provider payload has no usable current object.
	ErrMissingCurrent = errors.New("provider response has no current weather")
	// ErrAPIKeyMissing is returned when no upstream API key is configured.
	ErrAPIKeyMissing = errors.New("weather api key is not configured")
	// ErrFetchFailed wraps any upstream transport or decoding failure.
	ErrFetchFailed = errors.New("weather fetch failed")
)

// ValidationError reports bad or missing caller input on a preference write.
// Message is shown to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Message returns the caller-facing text for an error produced by this package.
// Upstream details are never included.
func Message(err error) string {
	var vErr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.Is(err, ErrAPIKeyMissing):
		return "API key missing."
	case errors.Is(err, ErrMissingLocation):
		return "Invalid location provided."
	default:
		return "Could not fetch weather details."
	}
}
