package http

import (
	"github.com/gin-gonic/gin"

	"expense-assistant/internal/assistant"
)

// processChatReq binds and validates the chat request body.
// Any body that is not a JSON object with both fields is a missing-fields error.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "processChatReq: %v", err)
		return req, assistant.ErrMissingFields
	}
	return req, req.validate()
}
