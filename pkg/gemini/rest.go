package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// restImpl talks to the Generative Language REST API with the key as a query credential.
type restImpl struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

func newRESTImpl(cfg Config) *restImpl {
	return &restImpl{
		apiKey:     cfg.APIKey,
		apiURL:     cfg.APIURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Model returns the model being used
func (g *restImpl) Model() string {
	return g.model
}

// GenerateContent sends a content generation request to the Gemini API.
func (g *restImpl) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if g.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.apiURL, g.model)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"?key="+url.QueryEscape(g.apiKey), bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		// url.Error prints the request URL, which carries the key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = endpoint
		}
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to read response: %w", err)
	}
	if len(raw) > MaxResponseBytes {
		return nil, ErrResponseTooLarge
	}

	var result GenerateResponse
	decodeErr := json.Unmarshal(raw, &result)

	if result.Error != nil {
		return nil, &APIError{
			StatusCode: firstNonZero(result.Error.Code, resp.StatusCode),
			Status:     result.Error.Status,
			Message:    result.Error.Message,
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(raw)}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", decodeErr)
	}

	return &result, nil
}

func firstNonZero(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}
