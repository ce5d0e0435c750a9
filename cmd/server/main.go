// Package main implements the entry point for the Navigator API server,
// which turns submitted English sentences into colloquial-phrase lessons
// backed by an LLM and serves quizzes over the stored phrases.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/nativephrase/navigator-api/internal/config"
	"github.com/nativephrase/navigator-api/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application's dependencies.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"store_path", cfg.Store.Path,
		"model", cfg.LLM.ModelName)

	app, err := newApplication(context.Background(), cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
