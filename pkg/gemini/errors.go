package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned before any network call when no key is configured.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not configured")

	// ErrEmptyResponse means the envelope had no candidate text.
	ErrEmptyResponse = errors.New("gemini: response has no candidate text")

	ErrResponseTooLarge = errors.New("gemini: response body too large")
)

// APIError is a failure reported by the API, either as a non-2xx status or as
// an "error" object in the response body.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini: API error %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Message)
}
