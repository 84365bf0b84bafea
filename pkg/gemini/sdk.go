package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// sdkImpl calls the Gemini API through the official genai client.
// The client sends the key in the x-goog-api-key header.
// The genai client is created on first use so a missing key is reported per call.
type sdkImpl struct {
	cfg Config

	once    sync.Once
	client  *genai.Client
	initErr error
}

func newSDKImpl(cfg Config) *sdkImpl {
	return &sdkImpl{cfg: cfg}
}

// Model returns the model being used
func (s *sdkImpl) Model() string {
	return s.cfg.Model
}

func (s *sdkImpl) init(ctx context.Context) (*genai.Client, error) {
	s.once.Do(func() {
		s.client, s.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      s.cfg.APIKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPClient:  s.cfg.HTTPClient,
			HTTPOptions: sdkHTTPOptions(s.cfg.APIURL),
		})
	})
	return s.client, s.initErr
}

// GenerateContent sends req through the genai client and maps the result back.
func (s *sdkImpl) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if s.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := s.init(ctx)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create genai client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, s.cfg.Model, toSDKContents(req.Contents), toSDKConfig(req))
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return nil, &APIError{StatusCode: apiErr.Code, Status: apiErr.Status, Message: apiErr.Message}
		}
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}

	return fromSDKResponse(resp), nil
}

// sdkHTTPOptions splits an API URL such as ".../v1beta" into the base URL and
// version the genai client joins itself.
func sdkHTTPOptions(apiURL string) genai.HTTPOptions {
	base, version := apiURL, ""
	if i := strings.LastIndex(apiURL, "/"); i >= 0 && isAPIVersion(apiURL[i+1:]) {
		base, version = apiURL[:i], apiURL[i+1:]
	}
	return genai.HTTPOptions{BaseURL: base + "/", APIVersion: version}
}

func isAPIVersion(seg string) bool {
	return len(seg) > 1 && seg[0] == 'v' && seg[1] >= '0' && seg[1] <= '9'
}

func toSDKContents(contents []Content) []*genai.Content {
	out := make([]*genai.Content, 0, len(contents))
	for _, c := range contents {
		role := c.Role
		if role == "" {
			role = genai.RoleUser
		}
		parts := make([]*genai.Part, 0, len(c.Parts))
		for _, p := range c.Parts {
			parts = append(parts, &genai.Part{Text: p.Text})
		}
		out = append(out, &genai.Content{Role: role, Parts: parts})
	}
	return out
}

func toSDKConfig(req GenerateRequest) *genai.GenerateContentConfig {
	if req.SystemInstruction == nil && req.GenerationConfig == nil {
		return nil
	}

	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != nil {
		cfg.SystemInstruction = toSDKContents([]Content{*req.SystemInstruction})[0]
	}
	if gc := req.GenerationConfig; gc != nil {
		if gc.Temperature > 0 {
			cfg.Temperature = genai.Ptr(float32(gc.Temperature))
		}
		if gc.MaxOutputTokens > 0 {
			cfg.MaxOutputTokens = int32(gc.MaxOutputTokens)
		}
	}
	return cfg
}

func fromSDKResponse(resp *genai.GenerateContentResponse) *GenerateResponse {
	out := &GenerateResponse{}
	if resp == nil {
		return out
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		content := Content{Role: cand.Content.Role}
		for _, p := range cand.Content.Parts {
			if p == nil {
				continue
			}
			content.Parts = append(content.Parts, Part{Text: p.Text})
		}
		out.Candidates = append(out.Candidates, Candidate{Content: content})
	}
	return out
}
