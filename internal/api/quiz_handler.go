package api

import (
	"log/slog"
	"net/http"

	"github.com/nativephrase/navigator-api/internal/api/shared"
	"github.com/nativephrase/navigator-api/internal/platform/logger"
	"github.com/nativephrase/navigator-api/internal/service"
)

// QuizHandler handles quiz-related HTTP requests.
type QuizHandler struct {
	quizService service.QuizService
	logger      *slog.Logger
}

// NewQuizHandler creates a new QuizHandler. A nil logger falls back to the
// default logger.
func NewQuizHandler(quizService service.QuizService, log *slog.Logger) *QuizHandler {
	if log == nil {
		log = slog.Default()
	}
	return &QuizHandler{
		quizService: quizService,
		logger:      log.With(slog.String("component", "quiz_handler")),
	}
}

// GetQuiz handles GET /api/quiz requests.
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	question, err := h.quizService.GenerateQuiz(r.Context())
	if err != nil {
		log.Warn("quiz generation failed", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuizResponse{
		Phrase:       question.Phrase,
		Question:     question.Question,
		Choices:      question.Choices,
		CorrectIndex: question.CorrectIndex,
	})
}

// EvaluateAnswer handles POST /api/evaluations requests.
func (h *QuizHandler) EvaluateAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req EvaluationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	evaluation, err := h.quizService.Evaluate(r.Context(), req.Phrase, req.Answer)
	if err != nil {
		log.Error("evaluation failed", "error", err, "phrase", req.Phrase)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EvaluationResponse{
		Correct:  evaluation.Correct,
		Score:    evaluation.Score,
		Feedback: evaluation.Feedback,
	})
}
