package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"expense-assistant/pkg/log"
)

// HeaderRequestID is read from inbound requests and echoed on responses.
const HeaderRequestID = "X-Request-ID"

// RequestID tags the request context with an ID, reusing a valid inbound one.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
