package assistant

import "context"

// UseCase is the assistant's application service.
type UseCase interface {
	// Chat turns a user message into a transaction or a conversational reply.
	Chat(ctx context.Context, input ChatInput) (Result, error)
}

// Gateway sends a prompt to the language model and returns its completion text.
type Gateway interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
