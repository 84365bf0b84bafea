package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(r gin.IRouter, h *handler) {
	r.POST("/chat", h.Chat)
}
