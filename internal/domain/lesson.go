package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateAddedLayout is the timestamp layout used for LessonRecord.DateAdded.
// The layout sorts lexicographically in chronological order, which is what
// the store's ordering contract relies on: records are ordered by plain
// string comparison of DateAdded, never by parsing it back into a time.
const DateAddedLayout = "2006-01-02 15:04:05"

// Common validation errors for LessonRecord
var (
	ErrEmptyLessonID     = fmt.Errorf("%w: lesson record ID cannot be empty", ErrValidation)
	ErrEmptyLessonPhrase = fmt.Errorf("%w: lesson record phrase cannot be empty", ErrValidation)
)

// LessonRecord is the persisted representation of one taught phrase.
// Records are immutable once stored: the memory bank is append-only and
// offers no update operation.
type LessonRecord struct {
	ID               uuid.UUID `json:"id"`
	Phrase           string    `json:"phrase"`
	Definition       string    `json:"meaning"`
	Examples         []string  `json:"examples,omitempty"`
	CorrectedContext string    `json:"corrected_context,omitempty"`
	LessonText       string    `json:"lesson_text,omitempty"`
	LessonHTML       string    `json:"lesson_html,omitempty"`
	DateAdded        string    `json:"date_added"`
}

// NewLessonRecord creates a new LessonRecord with the given phrase and
// definition. It generates a new UUID for the record ID and stamps
// DateAdded with the current UTC time. Returns an error if validation
// fails, in particular when the phrase is empty after trimming.
func NewLessonRecord(phrase, definition string) (*LessonRecord, error) {
	record := &LessonRecord{
		ID:         uuid.New(),
		Phrase:     strings.TrimSpace(phrase),
		Definition: strings.TrimSpace(definition),
		DateAdded:  NewDateAdded(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// NewDateAdded returns the current UTC time formatted with DateAddedLayout.
func NewDateAdded() string {
	return time.Now().UTC().Format(DateAddedLayout)
}

// Validate checks if the LessonRecord has valid data.
// Returns an error if any field fails validation.
func (r *LessonRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyLessonID
	}

	if strings.TrimSpace(r.Phrase) == "" {
		return ErrEmptyLessonPhrase
	}

	return nil
}
