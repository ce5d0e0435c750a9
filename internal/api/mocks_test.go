package api_test

import (
	"context"
	"errors"

	"github.com/nativephrase/navigator-api/internal/domain"
	"github.com/nativephrase/navigator-api/internal/phrase"
	"github.com/nativephrase/navigator-api/internal/service"
)

var errMockNotConfigured = errors.New("mock method not configured")

// mockLessonService is a hand-written service.LessonService for handler
// tests. Each call delegates to the corresponding func field.
type mockLessonService struct {
	SubmitFunc func(ctx context.Context, sentence string) (*service.SubmissionResult, error)
	ListFunc   func(ctx context.Context) ([]phrase.ParsedLesson, error)
	SearchFunc func(ctx context.Context, query string) ([]phrase.ParsedLesson, error)
}

func (m *mockLessonService) Submit(ctx context.Context, sentence string) (*service.SubmissionResult, error) {
	if m.SubmitFunc == nil {
		return nil, errMockNotConfigured
	}
	return m.SubmitFunc(ctx, sentence)
}

func (m *mockLessonService) ListLessons(ctx context.Context) ([]phrase.ParsedLesson, error) {
	if m.ListFunc == nil {
		return nil, errMockNotConfigured
	}
	return m.ListFunc(ctx)
}

func (m *mockLessonService) SearchLessons(ctx context.Context, query string) ([]phrase.ParsedLesson, error) {
	if m.SearchFunc == nil {
		return nil, errMockNotConfigured
	}
	return m.SearchFunc(ctx, query)
}

// mockQuizService is a hand-written service.QuizService for handler tests.
type mockQuizService struct {
	GenerateFunc func(ctx context.Context) (*domain.QuizQuestion, error)
	EvaluateFunc func(ctx context.Context, phraseText, answer string) (*domain.Evaluation, error)
}

func (m *mockQuizService) GenerateQuiz(ctx context.Context) (*domain.QuizQuestion, error) {
	if m.GenerateFunc == nil {
		return nil, errMockNotConfigured
	}
	return m.GenerateFunc(ctx)
}

func (m *mockQuizService) Evaluate(ctx context.Context, phraseText, answer string) (*domain.Evaluation, error) {
	if m.EvaluateFunc == nil {
		return nil, errMockNotConfigured
	}
	return m.EvaluateFunc(ctx, phraseText, answer)
}
