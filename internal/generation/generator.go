package generation

import "context"

// LessonContent is the raw teaching output produced by the external
// generator for one phrase. The lesson text and markup are kept verbatim;
// the canonical phrase is re-derived from them downstream. PhraseHint
// carries the phrase the generator believes it taught and is only used as
// a fallback when extraction fails.
type LessonContent struct {
	LessonText string
	LessonHTML string
	PhraseHint string
}

// Generator defines the interface for the correction and teaching calls.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// Correct rewrites the user's sentence into corrected English and
	// returns the corrector's labeled plain-text output.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - sentence: The user's original sentence
	//
	// Returns:
	//   - The corrector output, or an error if the call fails
	//     (see errors.go for specific types)
	Correct(ctx context.Context, sentence string) (string, error)

	// Teach produces a lesson for the given phrase in the given context.
	// The phrase may be empty; the generator then chooses the phrase
	// itself and reports it through the lesson content.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - phrase: The candidate phrase to teach, possibly empty
	//   - sentenceContext: The corrected sentence context for the lesson
	//
	// Returns:
	//   - The generated lesson content, or an error if generation fails
	Teach(ctx context.Context, phrase, sentenceContext string) (*LessonContent, error)
}
