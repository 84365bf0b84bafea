package http

import (
	"bytes"
	"encoding/json"
	"strings"

	"expense-assistant/internal/assistant"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message"`
	UserID  userID `json:"user_id"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" || r.UserID == "" {
		return assistant.ErrMissingFields
	}
	return nil
}

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{
		UserID:  string(r.UserID),
		Message: r.Message,
	}
}

// userID accepts a JSON string or number. null, "" and 0 decode to "".
type userID string

func (u *userID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*u = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*u = userID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		*u = ""
		return nil
	}
	*u = userID(n.String())
	return nil
}
