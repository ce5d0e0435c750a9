package service

import (
	"errors"
	"fmt"
)

// Common sentinel errors for the service layer
var (
	// ErrEmptySentence indicates that a submission contained no sentence.
	ErrEmptySentence = errors.New("sentence cannot be empty")

	// ErrNoPhrase indicates that no canonical phrase could be derived from
	// the generated lesson, so nothing was persisted for the submission.
	ErrNoPhrase = errors.New("no phrase could be extracted from the lesson")

	// ErrQuizUnavailable indicates that the store does not hold enough
	// distinct phrases to assemble a multiple-choice question.
	ErrQuizUnavailable = errors.New("not enough phrases for a quiz")

	// ErrPhraseNotFound indicates that an evaluation referenced a phrase
	// with no stored record.
	ErrPhraseNotFound = errors.New("phrase not found in memory")
)

// LessonServiceError wraps errors from the lesson service with context.
type LessonServiceError struct {
	// Operation is the operation that failed (e.g., "submit", "list_lessons")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for LessonServiceError.
func (e *LessonServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lesson service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("lesson service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *LessonServiceError) Unwrap() error {
	return e.Err
}

// NewLessonServiceError creates a new LessonServiceError.
// Sentinel errors pass through unwrapped so callers can match them
// directly with errors.Is.
func NewLessonServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrEmptySentence) ||
		errors.Is(err, ErrNoPhrase) ||
		errors.Is(err, ErrQuizUnavailable) ||
		errors.Is(err, ErrPhraseNotFound) {
		return err
	}

	return &LessonServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
