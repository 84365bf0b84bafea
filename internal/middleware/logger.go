package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog logs one line per request once the handler has finished.
func (mw Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= http.StatusInternalServerError:
			mw.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		case status >= http.StatusBadRequest:
			mw.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			mw.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
