package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"expense-assistant/internal/assistant"
)

func TestChat(t *testing.T) {
	tcs := []struct {
		name       string
		completion string
		err        error
		want       assistant.Result
		wantErr    error
	}{
		{
			name:       "transaction",
			completion: "```json\n{\"type\":\"transaction\",\"title\":\"Coffee\",\"amount\":-5,\"category\":\"Food & Drinks\"}\n```",
			want:       assistant.NewTransaction("Coffee", -5, assistant.CategoryFoodAndDrinks),
		},
		{
			name:       "conversation",
			completion: `{"type":"response","content":"Hi! Tell me what you spent."}`,
			want:       assistant.NewConversation("Hi! Tell me what you spent."),
		},
		{
			name:       "plain text falls back to trimmed text",
			completion: "  Hello there!  \n",
			want:       assistant.NewConversation("Hello there!"),
		},
		{
			name:       "malformed json falls back to raw text",
			completion: `{"type":"transaction", oops}`,
			want:       assistant.NewConversation(`{"type":"transaction", oops}`),
		},
		{
			name: "provider unavailable",
			err:  fmt.Errorf("%w: dial tcp: connection refused", assistant.ErrProviderUnavailable),
			want: assistant.NewConversation(assistant.ReplyUnavailable),
		},
		{
			name: "malformed envelope",
			err:  fmt.Errorf("%w: no candidates", assistant.ErrMalformedCompletion),
			want: assistant.NewConversation(assistant.ReplyRetry),
		},
		{
			name: "unexpected gateway error",
			err:  errors.New("something odd"),
			want: assistant.NewConversation(assistant.ReplyRetry),
		},
		{
			name:    "missing credential",
			err:     assistant.ErrMissingCredential,
			wantErr: assistant.ErrMissingCredential,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gw := &mockGateway{completion: tc.completion, err: tc.err}
			uc := New(&mockLogger{}, gw, CacheOptions{})

			got, err := uc.Chat(context.Background(), assistant.ChatInput{UserID: "u1", Message: "coffee for $5"})

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				if got != nil {
					t.Errorf("expected nil result on error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
			if gw.calls() != 1 {
				t.Errorf("expected exactly one gateway call, got %d", gw.calls())
			}
			if !strings.Contains(gw.prompts[0], "coffee for $5") {
				t.Errorf("prompt does not embed the message")
			}
		})
	}
}

func TestChat_Cache(t *testing.T) {
	gw := &mockGateway{completion: `{"type":"response","content":"cached"}`}
	uc := New(&mockLogger{}, gw, CacheOptions{Size: 10, TTL: time.Minute})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := uc.Chat(ctx, assistant.ChatInput{UserID: "u1", Message: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != assistant.Result(assistant.NewConversation("cached")) {
			t.Fatalf("unexpected result: %+v", got)
		}
	}
	if gw.calls() != 1 {
		t.Errorf("expected 1 gateway call with cache, got %d", gw.calls())
	}

	if _, err := uc.Chat(ctx, assistant.ChatInput{UserID: "u2", Message: "hello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.calls() != 2 {
		t.Errorf("expected a separate entry per user, got %d calls", gw.calls())
	}
}

func TestChat_CacheSkipsFallbacks(t *testing.T) {
	gw := &mockGateway{err: fmt.Errorf("%w: timeout", assistant.ErrProviderUnavailable)}
	uc := New(&mockLogger{}, gw, CacheOptions{Size: 10, TTL: time.Minute})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := uc.Chat(ctx, assistant.ChatInput{UserID: "u1", Message: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != assistant.Result(assistant.NewConversation(assistant.ReplyUnavailable)) {
			t.Fatalf("unexpected result: %+v", got)
		}
	}
	if gw.calls() != 2 {
		t.Errorf("provider failures must not be cached, got %d calls", gw.calls())
	}
}

func TestChat_CacheSkipsExtractionFallbacks(t *testing.T) {
	tcs := map[string]struct {
		completion string
		want       assistant.ConversationResult
	}{
		"blank":      {completion: "   ", want: assistant.NewConversation(assistant.ReplyRetry)},
		"plain text": {completion: "Hello there!", want: assistant.NewConversation("Hello there!")},
		"malformed":  {completion: `{"type":"transaction", oops}`, want: assistant.NewConversation(`{"type":"transaction", oops}`)},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			gw := &mockGateway{completion: tc.completion}
			uc := New(&mockLogger{}, gw, CacheOptions{Size: 10, TTL: time.Minute})

			for i := 0; i < 2; i++ {
				got, err := uc.Chat(context.Background(), assistant.ChatInput{UserID: "u1", Message: "hello"})
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != assistant.Result(tc.want) {
					t.Fatalf("unexpected result: %+v", got)
				}
			}

			if gw.calls() != 2 {
				t.Errorf("extraction fallbacks must not be cached, got %d calls", gw.calls())
			}
		})
	}
}
