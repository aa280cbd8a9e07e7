package domain

import (
	"time"
)

// DayKeyLayout is the calendar-day key format used for scoping records.
const DayKeyLayout = "2006-01-02"

// ClockLayout is the wall-clock time-of-day format for start and end times.
const ClockLayout = "15:04"

// ActivityRecord represents a single logged activity in the domain model.
// Records are immutable once created; the only mutation a store supports
// is deletion by id.
type ActivityRecord struct {
	ID              string
	Activity        string
	StartTime       string // wall-clock "HH:MM"
	EndTime         string // wall-clock "HH:MM"
	DurationMinutes int
	Date            string // calendar day key "YYYY-MM-DD"
	CreatedAt       time.Time
}

// NewActivityRecord creates an ActivityRecord for the given submission.
// The id is left blank; the store assigns it on append.
func NewActivityRecord(activity, startTime, endTime string, durationMinutes int, createdAt time.Time) ActivityRecord {
	return ActivityRecord{
		Activity:        activity,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: durationMinutes,
		Date:            DayKey(createdAt),
		CreatedAt:       createdAt,
	}
}

// IsValid checks if the record satisfies the persistence invariants.
func (r ActivityRecord) IsValid() bool {
	if r.Activity == "" {
		return false
	}
	if r.StartTime == "" || r.EndTime == "" {
		return false
	}
	if r.DurationMinutes <= 0 {
		return false
	}
	if r.Date == "" {
		return false
	}
	return true
}

// String returns the record in list display form.
func (r ActivityRecord) String() string {
	return r.Activity + " — " + r.StartTime + " to " + r.EndTime
}

// DayKey returns the calendar-day key for the given instant.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}
