// Package localfile implements the activity record store as a single
// serialized JSON blob on disk. Every mutation rewrites the whole blob and
// filtering happens in memory after decoding, mirroring a per-device local
// storage medium. An absent file reads as an empty log.
package localfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shibashis07/time-logger/internal/domain"
	"github.com/shibashis07/time-logger/internal/errors"
	"github.com/shibashis07/time-logger/internal/store"
)

// storedRecord is the on-disk JSON shape. There is no schema version field;
// readers must tolerate an absent file instead.
type storedRecord struct {
	ID              string    `json:"id"`
	Activity        string    `json:"activity"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Date            string    `json:"date"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FileStore implements the store.Store interface over one JSON file
type FileStore struct {
	path string
}

// New creates a file store writing to the given path. The parent directory
// is created if missing; the file itself is created lazily on first append.
func New(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.NewPersistenceError("create log directory", err)
	}
	return &FileStore{path: path}, nil
}

// Close is a no-op; the file is opened per operation
func (s *FileStore) Close() error {
	return nil
}

// Append persists a new activity record by rewriting the whole blob
func (s *FileStore) Append(ctx context.Context, record *domain.ActivityRecord) error {
	records, err := s.readAll()
	if err != nil {
		return err
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	records = append(records, toStored(record))
	return s.writeAll(records)
}

// List returns records matching the filter, ordered by start time ascending
func (s *FileStore) List(ctx context.Context, filter store.Filter) ([]*domain.ActivityRecord, error) {
	stored, err := s.readAll()
	if err != nil {
		return nil, err
	}

	var records []*domain.ActivityRecord
	for _, sr := range stored {
		record := fromStored(sr)
		if filter.Matches(record) {
			records = append(records, record)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartTime < records[j].StartTime
	})

	return records, nil
}

// Delete removes a record by id, rewriting the whole blob
func (s *FileStore) Delete(ctx context.Context, id string) error {
	records, err := s.readAll()
	if err != nil {
		return err
	}

	remaining := records[:0]
	found := false
	for _, sr := range records {
		if sr.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, sr)
	}

	if !found {
		return errors.NewNotFoundError("activity record", id)
	}

	return s.writeAll(remaining)
}

// readAll decodes the whole blob; a missing file is an empty log
func (s *FileStore) readAll() ([]storedRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewPersistenceError("read log file", err)
	}

	var records []storedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.NewPersistenceError("decode log file", err)
	}
	return records, nil
}

// writeAll rewrites the whole blob
func (s *FileStore) writeAll(records []storedRecord) error {
	if records == nil {
		records = []storedRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.NewPersistenceError("encode log file", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.NewPersistenceError("write log file", err)
	}
	return nil
}

func toStored(record *domain.ActivityRecord) storedRecord {
	return storedRecord{
		ID:              record.ID,
		Activity:        record.Activity,
		StartTime:       record.StartTime,
		EndTime:         record.EndTime,
		DurationMinutes: record.DurationMinutes,
		Date:            record.Date,
		CreatedAt:       record.CreatedAt,
	}
}

func fromStored(sr storedRecord) *domain.ActivityRecord {
	return &domain.ActivityRecord{
		ID:              sr.ID,
		Activity:        sr.Activity,
		StartTime:       sr.StartTime,
		EndTime:         sr.EndTime,
		DurationMinutes: sr.DurationMinutes,
		Date:            sr.Date,
		CreatedAt:       sr.CreatedAt,
	}
}
