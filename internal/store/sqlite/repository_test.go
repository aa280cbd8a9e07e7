package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shibashis07/time-logger/internal/domain"
	appErrors "github.com/shibashis07/time-logger/internal/errors"
	"github.com/shibashis07/time-logger/internal/store"
)

func setupTestDB(t *testing.T) *SQLiteStore {
	dbPath := filepath.Join(t.TempDir(), "timelog.db")

	s, err := New(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func makeRecord(activity, startTime, endTime string, minutes int, day string) *domain.ActivityRecord {
	createdAt, _ := time.Parse(domain.DayKeyLayout, day)
	record := domain.NewActivityRecord(activity, startTime, endTime, minutes, createdAt)
	return &record
}

func TestAppendAssignsID(t *testing.T) {
	s := setupTestDB(t)

	record := makeRecord("Reading", "09:00", "09:30", 30, "2025-03-14")
	err := s.Append(context.Background(), record)
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)

	// The canonical stored form round-trips
	records, err := s.List(context.Background(), store.Filter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
	assert.Equal(t, "Reading", records[0].Activity)
	assert.Equal(t, "09:00", records[0].StartTime)
	assert.Equal(t, "09:30", records[0].EndTime)
	assert.Equal(t, 30, records[0].DurationMinutes)
	assert.Equal(t, "2025-03-14", records[0].Date)
}

func TestAppendUniqueIDs(t *testing.T) {
	s := setupTestDB(t)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		record := makeRecord("Reading", "09:00", "09:30", 30, "2025-03-14")
		require.NoError(t, s.Append(context.Background(), record))
		assert.False(t, seen[record.ID], "id %s assigned twice", record.ID)
		seen[record.ID] = true
	}
}

func TestAppendRejectsNonPositiveDuration(t *testing.T) {
	s := setupTestDB(t)

	// The CHECK constraint backs up the engine-level invariant
	record := makeRecord("Reading", "09:30", "09:00", -30, "2025-03-14")
	err := s.Append(context.Background(), record)
	require.Error(t, err)
	assert.True(t, appErrors.IsErrorType(err, appErrors.ErrorTypePersistence))
}

func TestListOrdersByStartTime(t *testing.T) {
	s := setupTestDB(t)

	for _, r := range []*domain.ActivityRecord{
		makeRecord("Lunch", "12:00", "12:45", 45, "2025-03-14"),
		makeRecord("Reading", "09:00", "09:30", 30, "2025-03-14"),
		makeRecord("Run", "18:00", "18:40", 40, "2025-03-14"),
	} {
		require.NoError(t, s.Append(context.Background(), r))
	}

	records, err := s.List(context.Background(), store.Filter{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Reading", records[0].Activity)
	assert.Equal(t, "Lunch", records[1].Activity)
	assert.Equal(t, "Run", records[2].Activity)
}

func TestListFiltersByDate(t *testing.T) {
	s := setupTestDB(t)

	require.NoError(t, s.Append(context.Background(), makeRecord("Reading", "09:00", "09:30", 30, "2025-03-14")))
	require.NoError(t, s.Append(context.Background(), makeRecord("Run", "18:00", "18:40", 40, "2025-03-13")))

	records, err := s.List(context.Background(), store.FilterByDay("2025-03-14"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Reading", records[0].Activity)

	records, err = s.List(context.Background(), store.FilterByDay("2025-03-12"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListIsIdempotent(t *testing.T) {
	s := setupTestDB(t)

	require.NoError(t, s.Append(context.Background(), makeRecord("Reading", "09:00", "09:30", 30, "2025-03-14")))
	require.NoError(t, s.Append(context.Background(), makeRecord("Run", "18:00", "18:40", 40, "2025-03-14")))

	first, err := s.List(context.Background(), store.Filter{})
	require.NoError(t, err)
	second, err := s.List(context.Background(), store.Filter{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDelete(t *testing.T) {
	s := setupTestDB(t)

	record := makeRecord("Reading", "09:00", "09:30", 30, "2025-03-14")
	require.NoError(t, s.Append(context.Background(), record))

	err := s.Delete(context.Background(), record.ID)
	require.NoError(t, err)

	records, err := s.List(context.Background(), store.Filter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDeleteUnknownIDReportsNotFound(t *testing.T) {
	s := setupTestDB(t)

	err := s.Delete(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.True(t, appErrors.IsErrorType(err, appErrors.ErrorTypeNotFound))

	// Deleting twice reports not found the second time
	record := makeRecord("Reading", "09:00", "09:30", 30, "2025-03-14")
	require.NoError(t, s.Append(context.Background(), record))
	require.NoError(t, s.Delete(context.Background(), record.ID))
	err = s.Delete(context.Background(), record.ID)
	assert.True(t, appErrors.IsErrorType(err, appErrors.ErrorTypeNotFound))
}

func TestRecordsSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "timelog.db")

	s, err := New(dbPath)
	require.NoError(t, err)
	record := makeRecord("Reading", "09:00", "09:30", 30, "2025-03-14")
	require.NoError(t, s.Append(context.Background(), record))
	require.NoError(t, s.Close())

	reopened, err := New(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.List(context.Background(), store.Filter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
}
