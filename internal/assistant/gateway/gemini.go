package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-assistant/internal/assistant"
	"expense-assistant/pkg/gemini"
	"expense-assistant/pkg/log"
)

const logPrefix = "internal.assistant.gateway.Complete"

type implGateway struct {
	client  gemini.IGemini
	timeout time.Duration
	l       log.Logger
}

var _ assistant.Gateway = (*implGateway)(nil)

// New wraps a Gemini client as an assistant.Gateway.
// timeout bounds each call; zero means gemini.DefaultTimeout.
func New(client gemini.IGemini, timeout time.Duration, l log.Logger) *implGateway {
	if timeout <= 0 {
		timeout = gemini.DefaultTimeout
	}
	return &implGateway{
		client:  client,
		timeout: timeout,
		l:       l,
	}
}

// Complete sends prompt as a single user turn and returns the candidate text.
func (g *implGateway) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.client.GenerateContent(ctx, gemini.TextRequest(prompt))
	if err != nil {
		if errors.Is(err, gemini.ErrMissingAPIKey) {
			return "", assistant.ErrMissingCredential
		}
		g.l.Errorf(ctx, "%s: model %s failed after %s: %v", logPrefix, g.client.Model(), time.Since(start), err)
		return "", fmt.Errorf("%w: %v", assistant.ErrProviderUnavailable, err)
	}

	text, err := resp.Text()
	if err != nil {
		g.l.Warnf(ctx, "%s: %v", logPrefix, err)
		return "", fmt.Errorf("%w: %v", assistant.ErrMalformedCompletion, err)
	}

	g.l.Debugf(ctx, "%s: model %s answered in %s", logPrefix, g.client.Model(), time.Since(start))
	return text, nil
}
