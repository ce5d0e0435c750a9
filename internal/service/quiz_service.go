package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/nativephrase/navigator-api/internal/domain"
	"github.com/nativephrase/navigator-api/internal/phrase"
	"github.com/nativephrase/navigator-api/internal/store"
)

// defaultChoiceCount is the target number of choices per quiz question,
// including the correct one. Questions may carry fewer choices when the
// store does not hold enough distinct distractors.
const defaultChoiceCount = 4

// questionTemplate renders the quiz prompt for a target phrase.
const questionTemplate = "What is the best meaning of the phrase: '%s'?"

// QuizService generates multiple-choice questions from the memory bank
// and evaluates submitted answers.
type QuizService interface {
	// GenerateQuiz assembles one multiple-choice question from the
	// current store contents. Returns ErrQuizUnavailable when fewer than
	// two distinct phrases are stored.
	GenerateQuiz(ctx context.Context) (*domain.QuizQuestion, error)

	// Evaluate scores a submitted answer against the definition stored
	// for the phrase. It never fails on wrong answers; an unknown phrase
	// yields an incorrect evaluation with explanatory feedback.
	Evaluate(ctx context.Context, phraseText, answer string) (*domain.Evaluation, error)
}

// quizService is the default QuizService implementation.
type quizService struct {
	lessons store.LessonStore
	scorer  AnswerScorer
	logger  *slog.Logger

	// rng drives target selection, distractor sampling, and the choice
	// shuffle. It is injectable so tests can fix the seed; rand.Rand is
	// not safe for concurrent use, hence the mutex.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewQuizService creates a new QuizService. A nil scorer falls back to
// the default token-overlap scorer, a nil rng to a time-seeded one, and
// a nil logger to the default logger.
func NewQuizService(lessons store.LessonStore, scorer AnswerScorer, rng *rand.Rand, logger *slog.Logger) QuizService {
	if scorer == nil {
		scorer = NewTokenOverlapScorer()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &quizService{
		lessons: lessons,
		scorer:  scorer,
		logger:  logger.With(slog.String("component", "quiz_service")),
		rng:     rng,
	}
}

// GenerateQuiz implements QuizService.GenerateQuiz.
func (s *quizService) GenerateQuiz(ctx context.Context) (*domain.QuizQuestion, error) {
	records, err := s.lessons.ListAll(ctx)
	if err != nil {
		return nil, NewLessonServiceError("generate_quiz", "failed to list records", err)
	}

	if countDistinctPhrases(records) < 2 {
		return nil, ErrQuizUnavailable
	}

	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	target := records[s.rng.Intn(len(records))]
	parsed := phrase.ParseLesson(target)
	correctDefinition := parsed.Definition

	// Candidate distractor definitions: records teaching a different
	// phrase, whose definition is distinct from the correct one and from
	// each other. A record that words the target phrase differently must
	// not contribute a definition that is actually correct.
	targetPhrase := strings.ToLower(strings.TrimSpace(parsed.Phrase))
	seen := map[string]bool{correctDefinition: true, "": true}
	var candidates []string
	for _, record := range records {
		if strings.ToLower(strings.TrimSpace(record.Phrase)) == targetPhrase {
			continue
		}
		definition := phrase.ParseLesson(record).Definition
		if seen[definition] {
			continue
		}
		seen[definition] = true
		candidates = append(candidates, definition)
	}

	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > defaultChoiceCount-1 {
		candidates = candidates[:defaultChoiceCount-1]
	}

	// Distinct phrases can still collapse onto one definition (or lack
	// definitions entirely), leaving no usable distractor. A one-choice
	// question is worthless, so report unavailability instead.
	if len(candidates) == 0 {
		return nil, ErrQuizUnavailable
	}

	choices := append(candidates, correctDefinition)
	s.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	correctIndex := -1
	for i, choice := range choices {
		if choice == correctDefinition {
			correctIndex = i
			break
		}
	}

	question := &domain.QuizQuestion{
		Phrase:       parsed.Phrase,
		Question:     fmt.Sprintf(questionTemplate, parsed.Phrase),
		Choices:      choices,
		CorrectIndex: correctIndex,
	}

	if err := question.Validate(); err != nil {
		return nil, NewLessonServiceError("generate_quiz", "assembled an inconsistent question", err)
	}

	s.logger.Debug("quiz question generated",
		"phrase", question.Phrase,
		"choices", len(question.Choices))

	return question, nil
}

// Evaluate implements QuizService.Evaluate.
func (s *quizService) Evaluate(ctx context.Context, phraseText, answer string) (*domain.Evaluation, error) {
	if strings.TrimSpace(phraseText) == "" {
		return nil, ErrPhraseNotFound
	}

	record, err := s.lessons.FindByPhrase(ctx, phraseText)
	if err != nil {
		if store.IsNotFoundError(err) {
			return &domain.Evaluation{
				Correct:  false,
				Score:    0.0,
				Feedback: "Phrase not found in memory.",
			}, nil
		}
		return nil, NewLessonServiceError("evaluate", "failed to look up phrase", err)
	}

	definition := phrase.ParseLesson(record).Definition
	if definition == "" {
		return &domain.Evaluation{
			Correct:  false,
			Score:    0.0,
			Feedback: "No stored meaning to compare against.",
		}, nil
	}

	// Multiple-choice submissions echo a choice verbatim, so an exact
	// match (after trimming) short-circuits the similarity heuristic.
	if strings.TrimSpace(answer) == strings.TrimSpace(definition) {
		return &domain.Evaluation{
			Correct:  true,
			Score:    1.0,
			Feedback: "Good answer!",
		}, nil
	}

	score, correct := s.scorer.Score(answer, definition)
	evaluation := &domain.Evaluation{
		Correct: correct,
		Score:   score,
	}
	if correct {
		evaluation.Feedback = "Good answer!"
	} else {
		evaluation.Feedback = fmt.Sprintf("Not quite. Expected meaning (approx): %s", definition)
	}

	return evaluation, nil
}

// countDistinctPhrases counts case-insensitively distinct phrases.
func countDistinctPhrases(records []*domain.LessonRecord) int {
	distinct := make(map[string]bool, len(records))
	for _, record := range records {
		key := strings.ToLower(strings.TrimSpace(record.Phrase))
		if key != "" {
			distinct[key] = true
		}
	}
	return len(distinct)
}
