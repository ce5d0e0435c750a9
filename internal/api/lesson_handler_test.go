package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nativephrase/navigator-api/internal/api"
	"github.com/nativephrase/navigator-api/internal/domain"
	"github.com/nativephrase/navigator-api/internal/phrase"
	"github.com/nativephrase/navigator-api/internal/service"
)

func TestSubmitSentence(t *testing.T) {
	t.Parallel()

	recordID := uuid.New()
	lessonSvc := &mockLessonService{
		SubmitFunc: func(_ context.Context, sentence string) (*service.SubmissionResult, error) {
			assert.Equal(t, "I slept very early yesterday.", sentence)
			return &service.SubmissionResult{
				CorrectorOutput: "Corrected context: I went to bed very early yesterday.",
				Phrase:          "hit the sack",
				LessonText:      "Phrase to learn: <<hit the sack>>",
				LessonHTML:      "Phrase to learn: <strong>hit the sack</strong>",
				Record: &domain.LessonRecord{
					ID:        recordID,
					Phrase:    "hit the sack",
					DateAdded: "2024-01-02 08:00:00",
				},
			}, nil
		},
	}
	handler := api.NewLessonHandler(lessonSvc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/submissions",
		strings.NewReader(`{"sentence": "I slept very early yesterday."}`))
	w := httptest.NewRecorder()

	handler.SubmitSentence(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp api.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hit the sack", resp.Phrase)
	assert.Equal(t, recordID.String(), resp.RecordID)
	assert.Equal(t, "2024-01-02 08:00:00", resp.DateAdded)
	assert.Contains(t, resp.CorrectorOutput, "went to bed")
}

func TestSubmitSentenceBadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"sentence": `},
		{name: "missing sentence", body: `{}`},
		{name: "empty sentence", body: `{"sentence": ""}`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			handler := api.NewLessonHandler(&mockLessonService{}, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			handler.SubmitSentence(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmitSentenceServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "blank after trimming", err: service.ErrEmptySentence, wantStatus: http.StatusBadRequest},
		{name: "no phrase extracted", err: service.ErrNoPhrase, wantStatus: http.StatusUnprocessableEntity},
		{name: "unexpected failure", err: context.DeadlineExceeded, wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			lessonSvc := &mockLessonService{
				SubmitFunc: func(_ context.Context, _ string) (*service.SubmissionResult, error) {
					return nil, tc.err
				},
			}
			handler := api.NewLessonHandler(lessonSvc, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/submissions",
				strings.NewReader(`{"sentence": "whatever"}`))
			w := httptest.NewRecorder()

			handler.SubmitSentence(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			// The raw error must never reach the client.
			assert.NotContains(t, w.Body.String(), "deadline")
		})
	}
}

func TestListLessons(t *testing.T) {
	t.Parallel()

	lessonSvc := &mockLessonService{
		SearchFunc: func(_ context.Context, query string) ([]phrase.ParsedLesson, error) {
			assert.Equal(t, "", query)
			return []phrase.ParsedLesson{
				{Phrase: "hit the sack", Definition: "to go to bed", DateAdded: "2024-01-02 08:00:00"},
				{Phrase: "spill the beans", Definition: "to reveal a secret", DateAdded: "2024-01-01 08:00:00"},
			}, nil
		},
	}
	handler := api.NewLessonHandler(lessonSvc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/lessons", nil)
	w := httptest.NewRecorder()

	handler.ListLessons(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.LessonListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Lessons, 2)
	assert.Equal(t, "hit the sack", resp.Lessons[0].Phrase)
	assert.Equal(t, "to reveal a secret", resp.Lessons[1].Definition)
}

func TestListLessonsForwardsQuery(t *testing.T) {
	t.Parallel()

	lessonSvc := &mockLessonService{
		SearchFunc: func(_ context.Context, query string) ([]phrase.ParsedLesson, error) {
			assert.Equal(t, "sack", query)
			return nil, nil
		},
	}
	handler := api.NewLessonHandler(lessonSvc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/lessons?q=sack", nil)
	w := httptest.NewRecorder()

	handler.ListLessons(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.LessonListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Lessons)
}
