package store

import (
	"context"

	"github.com/nativephrase/navigator-api/internal/domain"
)

// Predicate is an arbitrary filter over lesson record fields, used by the
// review search. It must be a pure function of the record.
type Predicate func(record *domain.LessonRecord) bool

// LessonStore defines the interface for lesson record persistence.
// The store is append-only: records are immutable once stored and there is
// no update or delete operation. Implementations must serialize concurrent
// appends with respect to each other and to snapshot reads, so that a
// reader never observes a partially written record.
type LessonStore interface {
	// Append adds a new lesson record to the store.
	// It handles domain validation internally and assigns DateAdded when
	// absent. Duplicate phrases are allowed; appending never rejects a
	// record because a phrase was taught before.
	// The record is durably persisted before Append returns.
	Append(ctx context.Context, record *domain.LessonRecord) error

	// ListAll retrieves every stored record, ordered by DateAdded
	// descending using plain string comparison. Calling ListAll twice
	// without an intervening Append yields identical output.
	ListAll(ctx context.Context) ([]*domain.LessonRecord, error)

	// Search returns the records satisfying the predicate, in the same
	// order as ListAll.
	Search(ctx context.Context, predicate Predicate) ([]*domain.LessonRecord, error)

	// FindByPhrase retrieves the most recently added record whose phrase
	// matches the given phrase case-insensitively.
	// Returns ErrLessonNotFound if no record matches.
	FindByPhrase(ctx context.Context, phrase string) (*domain.LessonRecord, error)

	// Count reports the number of stored records.
	Count(ctx context.Context) (int, error)
}
