package memorybank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nativephrase/navigator-api/internal/domain"
	"github.com/nativephrase/navigator-api/internal/store"
)

// resultsWrapper is the alternate persisted shape: some earlier exports
// wrapped the record array in an object. Loading normalizes both shapes
// to a bare slice.
type resultsWrapper struct {
	Results []*domain.LessonRecord `json:"results"`
}

// FileStore implements the store.LessonStore interface using a single
// JSON array on disk as the storage backend.
type FileStore struct {
	path   string
	logger *slog.Logger

	// mu serializes appends with each other and with snapshot reads.
	mu sync.Mutex
}

// NewFileStore creates a new file-backed implementation of the
// LessonStore interface. The file does not need to exist yet; a missing
// file reads as an empty store. If logger is nil, a default logger is
// used.
func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("store path cannot be empty")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &FileStore{
		path:   path,
		logger: logger.With(slog.String("component", "lesson_store")),
	}, nil
}

// Ensure FileStore implements store.LessonStore interface
var _ store.LessonStore = (*FileStore)(nil)

// Append implements store.LessonStore.Append.
// It loads the current document, appends the record, and atomically
// rewrites the whole document before returning, so a successful return
// means the record is durable.
func (s *FileStore) Append(ctx context.Context, record *domain.LessonRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.DateAdded == "" {
		record.DateAdded = domain.NewDateAdded()
	}

	if err := record.Validate(); err != nil {
		s.logger.Warn("lesson record validation failed during append",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return store.NewStoreError("lesson", "append", "failed to load document", err)
	}

	records = append(records, record)

	if err := s.write(records); err != nil {
		return store.NewStoreError("lesson", "append", "failed to persist document", err)
	}

	s.logger.Debug("lesson record appended",
		slog.String("record_id", record.ID.String()),
		slog.String("phrase", record.Phrase),
		slog.Int("total_records", len(records)))

	return nil
}

// ListAll implements store.LessonStore.ListAll.
// Records are ordered by DateAdded descending using raw string
// comparison. The timestamp layout happens to make that chronological,
// but the contract is the string comparison itself.
func (s *FileStore) ListAll(ctx context.Context) ([]*domain.LessonRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	records, err := s.load()
	s.mu.Unlock()
	if err != nil {
		return nil, store.NewStoreError("lesson", "list", "failed to load document", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DateAdded > records[j].DateAdded
	})

	return records, nil
}

// Search implements store.LessonStore.Search.
func (s *FileStore) Search(ctx context.Context, predicate store.Predicate) ([]*domain.LessonRecord, error) {
	records, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.LessonRecord, 0, len(records))
	for _, record := range records {
		if predicate(record) {
			matched = append(matched, record)
		}
	}

	return matched, nil
}

// FindByPhrase implements store.LessonStore.FindByPhrase.
func (s *FileStore) FindByPhrase(ctx context.Context, phrase string) (*domain.LessonRecord, error) {
	records, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	wanted := strings.ToLower(strings.TrimSpace(phrase))
	for _, record := range records {
		if strings.ToLower(strings.TrimSpace(record.Phrase)) == wanted {
			return record, nil
		}
	}

	return nil, store.ErrLessonNotFound
}

// Count implements store.LessonStore.Count.
func (s *FileStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	records, err := s.load()
	s.mu.Unlock()
	if err != nil {
		return 0, store.NewStoreError("lesson", "count", "failed to load document", err)
	}

	return len(records), nil
}

// load reads and decodes the whole document. It tolerates both persisted
// shapes (a bare array or a results wrapper) and treats a missing file as
// an empty store. Records with missing fields decode to zero values and
// are kept; only a document that cannot be decoded at all is an error.
// Callers must hold s.mu.
func (s *FileStore) load() ([]*domain.LessonRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	if len(data) == 0 {
		return nil, nil
	}

	var records []*domain.LessonRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return dropNilRecords(records), nil
	}

	var wrapped resultsWrapper
	if err := json.Unmarshal(data, &wrapped); err == nil {
		return dropNilRecords(wrapped.Results), nil
	}

	return nil, fmt.Errorf("%w: %s", store.ErrCorruptStore, s.path)
}

// write atomically replaces the document: encode to a temp file in the
// same directory, fsync, then rename over the old document so readers
// never observe a partial write.
// Callers must hold s.mu.
func (s *FileStore) write(records []*domain.LessonRecord) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".memorybank-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return nil
}

// dropNilRecords removes JSON nulls from a decoded record slice.
func dropNilRecords(records []*domain.LessonRecord) []*domain.LessonRecord {
	kept := records[:0]
	for _, record := range records {
		if record != nil {
			kept = append(kept, record)
		}
	}
	return kept
}
