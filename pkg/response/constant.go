package response

const (
	// DefaultErrorMessage is sent when an error carries no message of its own.
	DefaultErrorMessage = "Internal server error"
)
