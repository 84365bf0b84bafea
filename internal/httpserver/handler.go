package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "expense-assistant/internal/assistant/delivery/http"
	"expense-assistant/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)
	srv.gin.Use(mw.RequestID(), mw.AccessLog(), mw.Recovery())

	srv.l.Infof(context.Background(), "HTTP environment: %s, gin mode: %s", srv.environment, srv.mode)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(srv.gin, h)
	srv.l.Infof(ctx, "Assistant route registered at POST /chat")

	return nil
}
