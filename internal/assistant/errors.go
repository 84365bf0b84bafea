package assistant

import "errors"

var (
	// ErrMissingFields rejects a request without a message or user id.
	ErrMissingFields = errors.New("Message and user_id are required")

	// ErrMissingCredential is the configuration error for an absent provider key.
	ErrMissingCredential = errors.New("GEMINI_API_KEY is not configured")

	// ErrProviderUnavailable covers transport failures, timeouts and provider-reported errors.
	ErrProviderUnavailable = errors.New("model provider unavailable")

	// ErrMalformedCompletion means the provider answered without the expected text.
	ErrMalformedCompletion = errors.New("malformed completion envelope")

	// ErrInvalidResult means the completion did not hold a valid result object.
	ErrInvalidResult = errors.New("completion does not contain a valid result")
)

// Replies used when the model's answer cannot be used.
const (
	ReplyUnavailable = "I'm having trouble connecting to my brain right now."
	ReplyRetry       = "Sorry, I couldn't process that. Could you try again?"
)
