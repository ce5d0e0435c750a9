package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nativephrase/navigator-api/internal/config"
	"github.com/nativephrase/navigator-api/internal/generation"
	"github.com/nativephrase/navigator-api/internal/platform/gemini"
	"github.com/nativephrase/navigator-api/internal/platform/memorybank"
	"github.com/nativephrase/navigator-api/internal/service"
	"github.com/nativephrase/navigator-api/internal/store"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// shutdown signal.
const shutdownTimeout = 10 * time.Second

// application holds the server's wired dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	lessonStore   store.LessonStore
	generator     generation.Generator
	lessonService service.LessonService
	quizService   service.QuizService
}

// newApplication wires the application's dependency graph: the memory
// bank store, the Gemini generator, and the services on top of them.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	lessonStore, err := memorybank.NewFileStore(cfg.Store.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open memory bank at %q: %w", cfg.Store.Path, err)
	}

	generator, err := gemini.NewGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini generator: %w", err)
	}

	lessonService := service.NewLessonService(generator, lessonStore, logger)
	quizService := service.NewQuizService(lessonStore, nil, nil, logger)

	return &application{
		config:        cfg,
		logger:        logger,
		lessonStore:   lessonStore,
		generator:     generator,
		lessonService: lessonService,
		quizService:   quizService,
	}, nil
}

// run starts the HTTP server and blocks until a shutdown signal arrives
// or the context is canceled, then shuts down gracefully.
func (app *application) run(ctx context.Context) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: app.setupRouter(),
	}

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Error("Server failed", "error", err)
			cancelServer()
		}
	}()

	select {
	case <-shutdownCh:
		app.logger.Info("Shutting down server...")
	case <-serverCtx.Done():
		app.logger.Info("Server context canceled, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
