package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"expense-assistant/config"
	_ "expense-assistant/docs" // Swagger docs
	"expense-assistant/internal/assistant/gateway"
	"expense-assistant/internal/assistant/usecase"
	"expense-assistant/internal/httpserver"
	"expense-assistant/pkg/gemini"
	"expense-assistant/pkg/log"
)

// @title       Expense Assistant API
// @description Turns natural-language messages into expense transactions or conversational replies using Gemini.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Expense Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Gemini model: %s (transport: %s, timeout: %s)", cfg.Gemini.Model, cfg.Gemini.Transport, cfg.Gemini.Timeout)

	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY is not configured: /chat will answer 500 until it is set")
	}

	// 3. Gemini client
	geminiClient, err := gemini.New(gemini.Config{
		APIKey:    cfg.Gemini.APIKey,
		APIURL:    cfg.Gemini.APIURL,
		Model:     cfg.Gemini.Model,
		Transport: cfg.Gemini.Transport,
		Timeout:   cfg.Gemini.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}

	// 4. Assistant domain
	assistantGateway := gateway.New(geminiClient, cfg.Gemini.Timeout, logger)
	assistantUC := usecase.New(logger, assistantGateway, usecase.CacheOptions{
		Size: cfg.Assistant.CacheSize,
		TTL:  cfg.Assistant.CacheTTL,
	})
	if cfg.Assistant.CacheSize > 0 {
		logger.Infof(ctx, "Completion cache enabled: size=%d ttl=%s", cfg.Assistant.CacheSize, cfg.Assistant.CacheTTL)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AssistantUseCase: assistantUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
