package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/nativephrase/navigator-api/internal/domain"
	"github.com/nativephrase/navigator-api/internal/generation"
	"github.com/nativephrase/navigator-api/internal/service"
	"github.com/nativephrase/navigator-api/internal/store"

	"github.com/nativephrase/navigator-api/internal/api/shared"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, service.ErrEmptySentence),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, service.ErrPhraseNotFound),
		errors.Is(err, service.ErrQuizUnavailable),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// The submission was well-formed but yielded nothing teachable
	case errors.Is(err, service.ErrNoPhrase),
		errors.Is(err, generation.ErrContentBlocked):
		return http.StatusUnprocessableEntity

	// Upstream LLM failures
	case errors.Is(err, generation.ErrTransientFailure):
		return http.StatusServiceUnavailable

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrEmptySentence):
		return "Sentence cannot be empty"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid request data"

	case errors.Is(err, service.ErrPhraseNotFound):
		return "Phrase not found"

	case errors.Is(err, service.ErrQuizUnavailable):
		return "Not enough phrases stored for a quiz yet"

	case errors.Is(err, service.ErrNoPhrase):
		return "No phrase could be extracted from the lesson"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The submission was blocked by the content filter"

	case errors.Is(err, generation.ErrTransientFailure):
		return "The language model is temporarily unavailable, please retry"

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse):
		return "Failed to generate a lesson"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for an internal error: the status
// comes from MapErrorToStatusCode and the body carries a safe message.
// An empty userMessage falls back to GetSafeErrorMessage.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'SubmissionRequest.Sentence' Error:Field validation for 'Sentence' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
