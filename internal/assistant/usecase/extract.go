package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"expense-assistant/internal/assistant"
)

// jsonBlockPattern spans the first '{' to the last '}'.
var jsonBlockPattern = regexp.MustCompile(`(?s)\{.*\}`)

// resultEnvelope is the loose shape the model is asked to produce.
// "kind" is accepted as an alias of "type".
type resultEnvelope struct {
	Type     string   `json:"type"`
	Kind     string   `json:"kind"`
	Title    *string  `json:"title"`
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Content  *string  `json:"content"`
}

// extractResult locates the JSON block in a completion and decodes it into a
// validated Result. Any failure wraps assistant.ErrInvalidResult.
func extractResult(text string) (assistant.Result, error) {
	block := jsonBlockPattern.FindString(text)
	if block == "" {
		return nil, fmt.Errorf("%w: no JSON object found", assistant.ErrInvalidResult)
	}
	return decodeResult([]byte(block))
}

func decodeResult(raw []byte) (assistant.Result, error) {
	var env resultEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", assistant.ErrInvalidResult, err)
	}

	kind := env.Type
	if kind == "" {
		kind = env.Kind
	}

	switch assistant.Kind(kind) {
	case assistant.KindTransaction:
		if env.Title == nil || strings.TrimSpace(*env.Title) == "" {
			return nil, fmt.Errorf("%w: transaction without title", assistant.ErrInvalidResult)
		}
		if env.Amount == nil || math.IsNaN(*env.Amount) || math.IsInf(*env.Amount, 0) {
			return nil, fmt.Errorf("%w: transaction without numeric amount", assistant.ErrInvalidResult)
		}
		if env.Category == nil || !assistant.Category(*env.Category).IsValid() {
			return nil, fmt.Errorf("%w: unknown category", assistant.ErrInvalidResult)
		}
		return assistant.NewTransaction(*env.Title, *env.Amount, assistant.Category(*env.Category)), nil

	case assistant.KindResponse:
		if env.Content == nil || strings.TrimSpace(*env.Content) == "" {
			return nil, fmt.Errorf("%w: response without content", assistant.ErrInvalidResult)
		}
		return assistant.NewConversation(*env.Content), nil

	default:
		return nil, fmt.Errorf("%w: unknown type %q", assistant.ErrInvalidResult, kind)
	}
}

// fallbackResult is the conversational reply used when extraction fails.
func fallbackResult(text string) assistant.ConversationResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return assistant.NewConversation(assistant.ReplyRetry)
	}
	return assistant.NewConversation(trimmed)
}
