package domain

import "fmt"

// Quiz-specific validation errors
var (
	// ErrQuizNoCorrectChoice is returned when a quiz question's correct
	// index does not point at any of its choices.
	ErrQuizNoCorrectChoice = fmt.Errorf("%w: quiz question correct index out of range", ErrValidation)

	// ErrQuizEmptyPhrase is returned when a quiz question has no target phrase.
	ErrQuizEmptyPhrase = fmt.Errorf("%w: quiz question phrase cannot be empty", ErrValidation)

	// ErrQuizTooFewChoices is returned when a quiz question carries fewer
	// than two choices; a single-choice question has no wrong answer.
	ErrQuizTooFewChoices = fmt.Errorf("%w: quiz question needs at least two choices", ErrValidation)
)

// QuizQuestion is a multiple-choice question derived from the memory bank.
// It is constructed on demand and never persisted; exactly one entry in
// Choices is the correct definition and CorrectIndex points at it.
type QuizQuestion struct {
	Phrase       string   `json:"phrase"`
	Question     string   `json:"question"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correct_index"`
}

// Validate checks if the QuizQuestion is internally consistent.
func (q *QuizQuestion) Validate() error {
	if q.Phrase == "" {
		return ErrQuizEmptyPhrase
	}

	if len(q.Choices) < 2 {
		return ErrQuizTooFewChoices
	}

	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
		return ErrQuizNoCorrectChoice
	}

	return nil
}

// Evaluation is the result of scoring a submitted answer against the
// definition stored for a phrase.
type Evaluation struct {
	Correct  bool    `json:"correct"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}
