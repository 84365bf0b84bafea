package usecase

import (
	"context"
	"errors"
	"strings"

	"expense-assistant/internal/assistant"
)

// Chat runs prompt → model → extraction for one message.
// Only a missing credential is returned as an error; provider and extraction
// failures become conversational replies.
func (uc *implUseCase) Chat(ctx context.Context, input assistant.ChatInput) (assistant.Result, error) {
	key := cacheKey(input)
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(key); ok {
			uc.l.Debugf(ctx, "%s: cache hit for user %s", LogPrefixChat, input.UserID)
			return cached, nil
		}
	}

	completion, err := uc.gateway.Complete(ctx, buildPrompt(input.Message))
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrMissingCredential):
			uc.l.Errorf(ctx, "%s: %v", LogPrefixChat, err)
			return nil, err
		case errors.Is(err, assistant.ErrProviderUnavailable):
			uc.l.Warnf(ctx, "%s: %v", LogPrefixChat, err)
			return assistant.NewConversation(assistant.ReplyUnavailable), nil
		default:
			uc.l.Warnf(ctx, "%s: %v", LogPrefixChat, err)
			return assistant.NewConversation(assistant.ReplyRetry), nil
		}
	}

	cacheable := true
	result, err := extractResult(completion)
	if err != nil {
		uc.l.Infof(ctx, "%s: %v, replying with raw completion", LogPrefixExtract, err)
		result = fallbackResult(completion)
		cacheable = false
	}

	if uc.cache != nil && cacheable {
		uc.cache.Add(key, result)
	}

	uc.l.Infof(ctx, "%s: user %s → %s", LogPrefixChat, input.UserID, result.Kind())
	return result, nil
}

func cacheKey(input assistant.ChatInput) string {
	return input.UserID + "\x00" + strings.TrimSpace(input.Message)
}
