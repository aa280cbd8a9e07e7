package sqlite

import (
	"time"

	"github.com/shibashis07/time-logger/internal/domain"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanRecord scans a single activity record from a database row
func ScanRecord(scanner Scanner) (*domain.ActivityRecord, error) {
	record := &domain.ActivityRecord{}
	var createdAt string

	err := scanner.Scan(
		&record.ID,
		&record.Activity,
		&record.StartTime,
		&record.EndTime,
		&record.DurationMinutes,
		&record.Date,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanRecords scans multiple activity records from database rows
func ScanRecords(rows Rows) ([]*domain.ActivityRecord, error) {
	var records []*domain.ActivityRecord
	for rows.Next() {
		record, err := ScanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
