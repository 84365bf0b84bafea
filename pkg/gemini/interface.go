package gemini

import (
	"context"
	"fmt"
)

// IGemini defines the interface for Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request to Gemini API
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Gemini client with the given configuration.
// An empty API key is accepted here; GenerateContent then fails with ErrMissingAPIKey.
func New(cfg Config) (IGemini, error) {
	cfg.setDefaults()

	switch cfg.Transport {
	case TransportREST:
		return newRESTImpl(cfg), nil
	case TransportSDK:
		return newSDKImpl(cfg), nil
	default:
		return nil, fmt.Errorf("gemini: unknown transport %q", cfg.Transport)
	}
}
