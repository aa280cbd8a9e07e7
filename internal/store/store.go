// Package store defines the backend-agnostic persistence contract for
// activity records. Two interchangeable backends satisfy it: a SQLite
// database (sqlite) and a single serialized JSON blob (localfile).
package store

import (
	"context"

	"github.com/shibashis07/time-logger/internal/domain"
)

// Filter narrows a List call. A nil Date returns every record; a non-nil
// Date matches records by calendar-day equality.
type Filter struct {
	Date *string
}

// FilterByDay returns a Filter scoped to the given day key.
func FilterByDay(day string) Filter {
	return Filter{Date: &day}
}

// Matches reports whether the record satisfies the filter. Backends that
// cannot push filtering into their storage layer apply it after decoding.
func (f Filter) Matches(record *domain.ActivityRecord) bool {
	if f.Date != nil && record.Date != *f.Date {
		return false
	}
	return true
}

// Store defines the interface for activity record persistence.
// Records are immutable: there is no update operation.
type Store interface {
	// Append persists the record, assigning its id. The record is mutated
	// in place to its canonical stored form.
	Append(ctx context.Context, record *domain.ActivityRecord) error

	// List returns records matching the filter, ordered by start time
	// ascending. Every call is a fresh snapshot.
	List(ctx context.Context, filter Filter) ([]*domain.ActivityRecord, error)

	// Delete removes a record by id. Deleting an absent id reports a
	// not-found error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}
