// Package sqlite implements the activity record store on a SQLite database.
// This is the remote-style backend: every List is an authoritative query and
// day filtering is pushed into SQL.
package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shibashis07/time-logger/internal/domain"
	"github.com/shibashis07/time-logger/internal/errors"
	"github.com/shibashis07/time-logger/internal/store"
	"github.com/shibashis07/time-logger/internal/store/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements the store.Store interface
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLite store instance
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewPersistenceError("open database", err)
	}

	if err := migrations.Apply(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Append persists a new activity record, assigning its id
func (s *SQLiteStore) Append(ctx context.Context, record *domain.ActivityRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
	INSERT INTO activity_records (id, activity, start_time, end_time, duration_minutes, date, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.Activity,
		record.StartTime,
		record.EndTime,
		record.DurationMinutes,
		record.Date,
		record.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return HandlePersistenceError("append record", err)
	}

	return nil
}

// List retrieves activity records matching the filter, ordered by start time
func (s *SQLiteStore) List(ctx context.Context, filter store.Filter) ([]*domain.ActivityRecord, error) {
	var conditions []string
	var args []interface{}

	if filter.Date != nil {
		conditions = append(conditions, "date = ?")
		args = append(args, *filter.Date)
	}

	query := `
	SELECT id, activity, start_time, end_time, duration_minutes, date, created_at
	FROM activity_records`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_time ASC, created_at ASC"

	return QueryMultiple(ctx, s.db, query, ScanRecords, "activity records", args...)
}

// Delete removes an activity record by id
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM activity_records WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, s.db, query, "activity record", id, id)
}
