package service_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nativephrase/navigator-api/internal/platform/memorybank"
	"github.com/nativephrase/navigator-api/internal/service"
)

func newSeededQuizService(t *testing.T, lessons *memorybank.FileStore, seed int64) service.QuizService {
	t.Helper()
	return service.NewQuizService(lessons, nil, rand.New(rand.NewSource(seed)), nil)
}

func TestGenerateQuiz(t *testing.T) {
	t.Parallel()

	lessons := newTestLessonStore(t)
	definitions := map[string]string{
		"hit the sack":    "to go to bed",
		"spill the beans": "to reveal a secret",
		"hit the road":    "to leave",
		"piece of cake":   "something very easy",
		"break the ice":   "to ease initial tension",
	}
	date := "2024-01-01 08:00:0"
	i := 0
	for phraseText, definition := range definitions {
		seedRecord(t, lessons, phraseText, definition, date+string(rune('0'+i)))
		i++
	}

	svc := newSeededQuizService(t, lessons, 42)

	// The shuffle is seeded, but the invariants must hold for any seed.
	for round := 0; round < 50; round++ {
		question, err := svc.GenerateQuiz(context.Background())
		require.NoError(t, err)

		correctDefinition := definitions[question.Phrase]
		require.NotEmpty(t, correctDefinition, "target phrase must come from the store")

		require.True(t, question.CorrectIndex >= 0 && question.CorrectIndex < len(question.Choices))
		assert.Equal(t, correctDefinition, question.Choices[question.CorrectIndex])

		matches := 0
		for _, choice := range question.Choices {
			if choice == correctDefinition {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "exactly one choice may equal the correct definition")

		assert.LessOrEqual(t, len(question.Choices), 4)
		assert.GreaterOrEqual(t, len(question.Choices), 2)
		assert.Equal(t,
			"What is the best meaning of the phrase: '"+question.Phrase+"'?",
			question.Question)
	}
}

func TestGenerateQuizIsDeterministicForAFixedSeed(t *testing.T) {
	t.Parallel()

	lessons := newTestLessonStore(t)
	seedRecord(t, lessons, "hit the sack", "to go to bed", "2024-01-01 08:00:00")
	seedRecord(t, lessons, "spill the beans", "to reveal a secret", "2024-01-02 08:00:00")
	seedRecord(t, lessons, "hit the road", "to leave", "2024-01-03 08:00:00")

	first, err := newSeededQuizService(t, lessons, 7).GenerateQuiz(context.Background())
	require.NoError(t, err)
	second, err := newSeededQuizService(t, lessons, 7).GenerateQuiz(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateQuizUnavailable(t *testing.T) {
	t.Parallel()

	t.Run("empty store", func(t *testing.T) {
		t.Parallel()
		svc := newSeededQuizService(t, newTestLessonStore(t), 1)

		_, err := svc.GenerateQuiz(context.Background())
		assert.ErrorIs(t, err, service.ErrQuizUnavailable)
	})

	t.Run("single record", func(t *testing.T) {
		t.Parallel()
		lessons := newTestLessonStore(t)
		seedRecord(t, lessons, "hit the sack", "to go to bed", "2024-01-01 08:00:00")
		svc := newSeededQuizService(t, lessons, 1)

		_, err := svc.GenerateQuiz(context.Background())
		assert.ErrorIs(t, err, service.ErrQuizUnavailable)
	})

	t.Run("distinct phrases sharing one definition", func(t *testing.T) {
		t.Parallel()
		lessons := newTestLessonStore(t)
		seedRecord(t, lessons, "hit the sack", "shared meaning", "2024-01-01 08:00:00")
		seedRecord(t, lessons, "spill the beans", "shared meaning", "2024-01-02 08:00:00")
		svc := newSeededQuizService(t, lessons, 1)

		// No distractor survives the definition dedupe, and a one-choice
		// question must never be returned.
		_, err := svc.GenerateQuiz(context.Background())
		assert.ErrorIs(t, err, service.ErrQuizUnavailable)
	})

	t.Run("two records with the same phrase", func(t *testing.T) {
		t.Parallel()
		lessons := newTestLessonStore(t)
		seedRecord(t, lessons, "hit the sack", "to go to bed", "2024-01-01 08:00:00")
		seedRecord(t, lessons, "Hit The Sack", "to turn in for the night", "2024-01-02 08:00:00")
		svc := newSeededQuizService(t, lessons, 1)

		_, err := svc.GenerateQuiz(context.Background())
		assert.ErrorIs(t, err, service.ErrQuizUnavailable)
	})
}

func TestGenerateQuizWithFewDistractors(t *testing.T) {
	t.Parallel()

	lessons := newTestLessonStore(t)
	seedRecord(t, lessons, "hit the sack", "to go to bed", "2024-01-01 08:00:00")
	seedRecord(t, lessons, "spill the beans", "to reveal a secret", "2024-01-02 08:00:00")

	svc := newSeededQuizService(t, lessons, 3)

	question, err := svc.GenerateQuiz(context.Background())
	require.NoError(t, err)

	// Only one distractor exists, so the question carries two choices
	// instead of the target four.
	assert.Len(t, question.Choices, 2)
	assert.NotEqual(t, question.Choices[0], question.Choices[1])
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	lessons := newTestLessonStore(t)
	seedRecord(t, lessons, "hit the sack", "to go to bed", "2024-01-01 08:00:00")

	svc := newSeededQuizService(t, lessons, 5)

	t.Run("exact match", func(t *testing.T) {
		evaluation, err := svc.Evaluate(context.Background(), "hit the sack", "to go to bed")
		require.NoError(t, err)
		assert.True(t, evaluation.Correct)
		assert.Equal(t, 1.0, evaluation.Score)
	})

	t.Run("exact match with surrounding whitespace", func(t *testing.T) {
		evaluation, err := svc.Evaluate(context.Background(), "hit the sack", "  to go to bed \n")
		require.NoError(t, err)
		assert.True(t, evaluation.Correct)
		assert.Equal(t, 1.0, evaluation.Score)
	})

	t.Run("wrong multiple-choice answer", func(t *testing.T) {
		evaluation, err := svc.Evaluate(context.Background(), "hit the sack", "to reveal a secret")
		require.NoError(t, err)
		assert.False(t, evaluation.Correct)
		assert.Contains(t, evaluation.Feedback, "to go to bed",
			"feedback must include the correct choice's text")
	})

	t.Run("free text with enough overlap", func(t *testing.T) {
		evaluation, err := svc.Evaluate(context.Background(), "hit the sack", "it means you go to bed")
		require.NoError(t, err)
		assert.True(t, evaluation.Correct)
		assert.Greater(t, evaluation.Score, 0.4)
	})

	t.Run("unknown phrase", func(t *testing.T) {
		evaluation, err := svc.Evaluate(context.Background(), "piece of cake", "something easy")
		require.NoError(t, err)
		assert.False(t, evaluation.Correct)
		assert.Equal(t, 0.0, evaluation.Score)
		assert.Contains(t, evaluation.Feedback, "not found")
	})
}
