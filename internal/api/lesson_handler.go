package api

import (
	"log/slog"
	"net/http"

	"github.com/nativephrase/navigator-api/internal/api/shared"
	"github.com/nativephrase/navigator-api/internal/phrase"
	"github.com/nativephrase/navigator-api/internal/platform/logger"
	"github.com/nativephrase/navigator-api/internal/service"
)

// LessonHandler handles submission and review HTTP requests.
type LessonHandler struct {
	lessonService service.LessonService
	logger        *slog.Logger
}

// NewLessonHandler creates a new LessonHandler. A nil logger falls back to
// the default logger.
func NewLessonHandler(lessonService service.LessonService, log *slog.Logger) *LessonHandler {
	if log == nil {
		log = slog.Default()
	}
	return &LessonHandler{
		lessonService: lessonService,
		logger:        log.With(slog.String("component", "lesson_handler")),
	}
}

// SubmitSentence handles POST /api/submissions requests.
func (h *LessonHandler) SubmitSentence(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SubmissionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.lessonService.Submit(r.Context(), req.Sentence)
	if err != nil {
		log.Warn("submission failed", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, submissionToResponse(result))
}

// ListLessons handles GET /api/lessons requests. An optional q query
// parameter filters lessons by phrase or definition.
func (h *LessonHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	query := r.URL.Query().Get("q")

	lessons, err := h.lessonService.SearchLessons(r.Context(), query)
	if err != nil {
		log.Error("failed to list lessons", "error", err, "query", query)
		HandleAPIError(w, r, err, "Failed to list lessons")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lessonsToResponse(lessons))
}

// submissionToResponse converts a service.SubmissionResult to a SubmissionResponse.
func submissionToResponse(result *service.SubmissionResult) SubmissionResponse {
	return SubmissionResponse{
		CorrectorOutput: result.CorrectorOutput,
		Phrase:          result.Phrase,
		LessonText:      result.LessonText,
		LessonHTML:      result.LessonHTML,
		RecordID:        result.Record.ID.String(),
		DateAdded:       result.Record.DateAdded,
	}
}

// lessonsToResponse converts parsed lessons to the listing response.
func lessonsToResponse(lessons []phrase.ParsedLesson) LessonListResponse {
	out := make([]LessonResponse, 0, len(lessons))
	for _, lesson := range lessons {
		out = append(out, LessonResponse{
			Phrase:     lesson.Phrase,
			Definition: lesson.Definition,
			Examples:   lesson.Examples,
			DateAdded:  lesson.DateAdded,
		})
	}
	return LessonListResponse{Lessons: out, Total: len(out)}
}
