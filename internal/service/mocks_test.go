package service_test

import (
	"context"
	"errors"

	"github.com/nativephrase/navigator-api/internal/generation"
)

// mockGenerator is a hand-written generation.Generator for service tests.
// Each call delegates to the corresponding func field, so tests can shape
// the generator's behavior per case.
type mockGenerator struct {
	CorrectFunc func(ctx context.Context, sentence string) (string, error)
	TeachFunc   func(ctx context.Context, phrase, sentenceContext string) (*generation.LessonContent, error)

	CorrectCalls int
	TeachCalls   int
}

var errMockNotConfigured = errors.New("mock method not configured")

func (m *mockGenerator) Correct(ctx context.Context, sentence string) (string, error) {
	m.CorrectCalls++
	if m.CorrectFunc == nil {
		return "", errMockNotConfigured
	}
	return m.CorrectFunc(ctx, sentence)
}

func (m *mockGenerator) Teach(ctx context.Context, phrase, sentenceContext string) (*generation.LessonContent, error) {
	m.TeachCalls++
	if m.TeachFunc == nil {
		return nil, errMockNotConfigured
	}
	return m.TeachFunc(ctx, phrase, sentenceContext)
}
