package accuweather

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAPIKey is returned when the API key is not a 32-character
	// string, or when the service rejects a request with HTTP 401.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrInvalidCoordinates is returned when neither a location key nor a
	// valid latitude/longitude pair was supplied.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrRequestsExceeded is returned when the allowed number of requests
	// for the API key has been exceeded.
	ErrRequestsExceeded = errors.New("the allowed number of requests has been exceeded")
)

// APIError is returned for any non-2xx response that is not covered by one
// of the sentinel errors above. It carries the HTTP status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid response from AccuWeather API: %d (%s)", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("invalid response from AccuWeather API: %d", e.StatusCode)
}

// missingFieldError reports a payload that does not match the documented
// vendor schema. It is not recoverable by the caller.
func missingFieldError(field string) error {
	return fmt.Errorf("unexpected AccuWeather payload: missing field %q", field)
}
