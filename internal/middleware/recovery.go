package middleware

import (
	"github.com/gin-gonic/gin"

	"expense-assistant/pkg/response"
)

// Recovery turns a panic into a 500 with the standard error body.
func (mw Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		mw.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		response.InternalError(c)
		c.Abort()
	})
}
