package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nativephrase/navigator-api/internal/domain"
	"github.com/nativephrase/navigator-api/internal/generation"
	"github.com/nativephrase/navigator-api/internal/phrase"
	"github.com/nativephrase/navigator-api/internal/store"
)

// SubmissionResult is the outcome of one submission: the corrector's
// output plus the lesson that was taught and persisted.
type SubmissionResult struct {
	CorrectorOutput string
	Phrase          string
	LessonText      string
	LessonHTML      string
	Record          *domain.LessonRecord
}

// LessonService provides the submission pipeline and the review listing.
type LessonService interface {
	// Submit runs one sentence through the pipeline: correction, teaching,
	// phrase extraction, and persistence of the resulting lesson record.
	// Returns ErrEmptySentence for blank input and ErrNoPhrase when no
	// canonical phrase could be derived; in the latter case nothing is
	// persisted.
	Submit(ctx context.Context, sentence string) (*SubmissionResult, error)

	// ListLessons returns the parsed review view of every stored lesson,
	// most recent first.
	ListLessons(ctx context.Context) ([]phrase.ParsedLesson, error)

	// SearchLessons returns the parsed lessons whose phrase or definition
	// contains the query, case-insensitively. An empty query lists
	// everything.
	SearchLessons(ctx context.Context, query string) ([]phrase.ParsedLesson, error)
}

// lessonService is the default LessonService implementation.
type lessonService struct {
	generator generation.Generator
	lessons   store.LessonStore
	logger    *slog.Logger
}

// NewLessonService creates a new LessonService with the given
// dependencies. If logger is nil, a default logger is used.
func NewLessonService(generator generation.Generator, lessons store.LessonStore, logger *slog.Logger) LessonService {
	if logger == nil {
		logger = slog.Default()
	}
	return &lessonService{
		generator: generator,
		lessons:   lessons,
		logger:    logger.With(slog.String("component", "lesson_service")),
	}
}

// Submit implements LessonService.Submit.
func (s *lessonService) Submit(ctx context.Context, sentence string) (*SubmissionResult, error) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return nil, ErrEmptySentence
	}

	correctorOutput, err := s.generator.Correct(ctx, sentence)
	if err != nil {
		s.logger.Error("corrector call failed", "error", err)
		return nil, NewLessonServiceError("submit", "corrector call failed", err)
	}

	// A candidate phrase from the corrector output is a hint for the
	// tutor, not the final answer; a miss here is non-fatal.
	candidate := phrase.ExtractCandidate(correctorOutput)

	lessonContext := correctorOutput
	if lessonContext == "" {
		lessonContext = sentence
	}

	lesson, err := s.generator.Teach(ctx, candidate, lessonContext)
	if err != nil {
		s.logger.Error("tutor call failed", "error", err, "candidate", candidate)
		return nil, NewLessonServiceError("submit", "tutor call failed", err)
	}

	canonical := phrase.Extract(lesson.LessonText, lesson.LessonHTML)
	if canonical == "" {
		canonical = strings.TrimSpace(lesson.PhraseHint)
	}
	if canonical == "" {
		canonical = candidate
	}
	if canonical == "" {
		s.logger.Warn("no canonical phrase for submission, nothing persisted")
		return nil, ErrNoPhrase
	}

	record, err := domain.NewLessonRecord(canonical, "")
	if err != nil {
		return nil, NewLessonServiceError("submit", "failed to build lesson record", err)
	}
	record.CorrectedContext = strings.TrimSpace(correctorOutput)
	record.LessonText = lesson.LessonText
	record.LessonHTML = lesson.LessonHTML

	// Derive the stored definition and examples from the lesson content
	// itself, so the record stays useful even if parsing improves later.
	parsed := phrase.ParseLesson(record)
	record.Definition = parsed.Definition
	record.Examples = parsed.Examples

	if err := s.lessons.Append(ctx, record); err != nil {
		s.logger.Error("failed to persist lesson record", "error", err, "phrase", canonical)
		return nil, NewLessonServiceError("submit", "failed to persist lesson record", err)
	}

	s.logger.Info("lesson taught and stored",
		"phrase", canonical,
		"record_id", record.ID.String())

	return &SubmissionResult{
		CorrectorOutput: correctorOutput,
		Phrase:          canonical,
		LessonText:      lesson.LessonText,
		LessonHTML:      lesson.LessonHTML,
		Record:          record,
	}, nil
}

// ListLessons implements LessonService.ListLessons.
func (s *lessonService) ListLessons(ctx context.Context) ([]phrase.ParsedLesson, error) {
	records, err := s.lessons.ListAll(ctx)
	if err != nil {
		return nil, NewLessonServiceError("list_lessons", "failed to list records", err)
	}

	return parseAll(records), nil
}

// SearchLessons implements LessonService.SearchLessons.
func (s *lessonService) SearchLessons(ctx context.Context, query string) ([]phrase.ParsedLesson, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.ListLessons(ctx)
	}

	records, err := s.lessons.Search(ctx, func(record *domain.LessonRecord) bool {
		parsed := phrase.ParseLesson(record)
		haystack := strings.ToLower(parsed.Phrase + " " + parsed.Definition)
		return strings.Contains(haystack, query)
	})
	if err != nil {
		return nil, NewLessonServiceError("search_lessons", "failed to search records", err)
	}

	return parseAll(records), nil
}

// parseAll maps stored records to their parsed review views.
func parseAll(records []*domain.LessonRecord) []phrase.ParsedLesson {
	lessons := make([]phrase.ParsedLesson, 0, len(records))
	for _, record := range records {
		lessons = append(lessons, phrase.ParseLesson(record))
	}
	return lessons
}
