// Package main implements the entry point for the Postwright API server,
// a stateless HTTP façade that turns Gemini generations into a stable JSON
// contract for social post content and comment batches.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/postwright/postwright-api/internal/config"
	"github.com/postwright/postwright-api/internal/generation"
	"github.com/postwright/postwright-api/internal/platform/gemini"
	"github.com/postwright/postwright-api/internal/platform/logger"
)

// application holds the process-lifetime dependencies. Everything in here is
// constructed once at startup and read-only afterwards; requests share no
// other state.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	generator generation.Generator
}

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// A missing backend credential or an un-constructible client are the only
// fatal conditions; both abort startup here.
func initializeApp(ctx context.Context) (*application, error) {
	// A local .env file is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, err
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	generator, err := gemini.NewGeminiGenerator(ctx, appLogger, cfg.LLM)
	if err != nil {
		return nil, err
	}

	return &application{
		config:    cfg,
		logger:    appLogger,
		generator: generator,
	}, nil
}
