package phrase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nativephrase/navigator-api/internal/domain"
	"github.com/nativephrase/navigator-api/internal/phrase"
)

func TestParseLesson(t *testing.T) {
	t.Parallel()

	lessonText := "What to improve: tense of the verb\n" +
		"Phrase to learn: <<hit the sack>>\n" +
		"Definition: to go to bed, especially when very tired\n" +
		"Examples:\n" +
		"1. After the long drive I just wanted to <<hit the sack>>.\n" +
		"2. You should hit the sack early tonight.\n" +
		"Notes: informal, very common in speech"

	record := &domain.LessonRecord{
		ID:         uuid.New(),
		Phrase:     "stored phrase",
		Definition: "stored meaning",
		LessonText: lessonText,
		DateAdded:  "2024-01-02 09:00:00",
	}

	parsed := phrase.ParseLesson(record)

	assert.Equal(t, "hit the sack", parsed.Phrase)
	assert.Equal(t, "to go to bed, especially when very tired", parsed.Definition)
	require.Len(t, parsed.Examples, 2)
	assert.Equal(t, "After the long drive I just wanted to hit the sack.", parsed.Examples[0])
	assert.Equal(t, "You should hit the sack early tonight.", parsed.Examples[1])
	assert.Equal(t, "2024-01-02 09:00:00", parsed.DateAdded)
}

func TestParseLessonFallsBackToStoredFields(t *testing.T) {
	t.Parallel()

	record := &domain.LessonRecord{
		ID:         uuid.New(),
		Phrase:     "spill the beans",
		Definition: "to reveal a secret",
		DateAdded:  "2024-01-01 08:00:00",
	}

	parsed := phrase.ParseLesson(record)

	assert.Equal(t, "spill the beans", parsed.Phrase)
	assert.Equal(t, "to reveal a secret", parsed.Definition)
	assert.Empty(t, parsed.Examples)
}

func TestParseLessonExamplesFromCorrectedContext(t *testing.T) {
	t.Parallel()

	record := &domain.LessonRecord{
		ID:               uuid.New(),
		Phrase:           "wiped out",
		Definition:       "completely exhausted",
		CorrectedContext: "Yesterday I was wiped out after work. I went straight to bed.",
		DateAdded:        "2024-01-03 10:00:00",
	}

	parsed := phrase.ParseLesson(record)

	require.Len(t, parsed.Examples, 2)
	assert.Equal(t, "Yesterday I was wiped out after work.", parsed.Examples[0])
	assert.Equal(t, "I went straight to bed.", parsed.Examples[1])
}

func TestParseLessonDeduplicatesExamples(t *testing.T) {
	t.Parallel()

	record := &domain.LessonRecord{
		ID:         uuid.New(),
		Phrase:     "hang in there",
		Definition: "do not give up",
		LessonText: "Examples:\n- Just <<hang in there>> until Friday.\n- Just hang in there until Friday.",
		DateAdded:  "2024-01-04 11:00:00",
	}

	parsed := phrase.ParseLesson(record)

	require.Len(t, parsed.Examples, 1)
	assert.Equal(t, "Just hang in there until Friday.", parsed.Examples[0])
}
