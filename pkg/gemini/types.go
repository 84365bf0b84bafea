package gemini

import (
	"net/http"
	"strings"
	"time"
)

// Config configures a Gemini client.
type Config struct {
	APIKey     string
	APIURL     string
	Model      string
	Transport  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// GenerateRequest is the top-level request body for Gemini API.
type GenerateRequest struct {
	SystemInstruction *Content          `json:"system_instruction,omitempty"`
	Contents          []Content         `json:"contents"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds a text segment.
type Part struct {
	Text string `json:"text,omitempty"`
}

// GenerationConfig holds optional generation settings.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// GenerateResponse is the top-level response body from Gemini API.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
	Error      *errorBody  `json:"error,omitempty"`
}

// Candidate represents a single response candidate.
type Candidate struct {
	Content Content `json:"content"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Text returns the text of the first part of the first candidate.
func (r *GenerateResponse) Text() (string, error) {
	if r == nil || len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return r.Candidates[0].Content.Parts[0].Text, nil
}

// TextRequest builds a single-turn request holding one text part.
func TextRequest(prompt string) GenerateRequest {
	return GenerateRequest{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
	}
}

func (c *Config) setDefaults() {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	if c.Transport == "" {
		c.Transport = TransportREST
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
}
