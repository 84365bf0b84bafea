package httpserver

import (
	"github.com/gin-gonic/gin"

	"expense-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Expense assistant is up"
	HealthVersion = "1.0.0"
	ServiceName   = "expense-assistant"
)

func statusBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, statusBody("healthy"))
}

// readyCheck reports ready once the server is accepting requests.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, statusBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusBody("alive"))
}
