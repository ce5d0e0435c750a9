package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nativephrase/navigator-api/internal/api"
	apiMiddleware "github.com/nativephrase/navigator-api/internal/api/middleware"
	"github.com/nativephrase/navigator-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	lessonHandler := api.NewLessonHandler(app.lessonService, app.logger)
	quizHandler := api.NewQuizHandler(app.quizService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/submissions", lessonHandler.SubmitSentence)
		r.Get("/lessons", lessonHandler.ListLessons)
		r.Get("/quiz", quizHandler.GetQuiz)
		r.Post("/evaluations", quizHandler.EvaluateAnswer)
	})

	// Health reports the memory bank size alongside liveness; a store
	// that cannot be read counts as unhealthy.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		count, err := app.lessonStore.Count(r.Context())
		if err != nil {
			app.logger.Error("health check store read failed", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Memory bank unavailable")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, api.HealthResponse{
			Status:  "ok",
			Lessons: count,
		})
	})

	return r
}
