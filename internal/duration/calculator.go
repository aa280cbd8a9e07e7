// Package duration computes elapsed minutes between two wall-clock times
// anchored to the same calendar day.
package duration

import (
	"strings"
	"time"

	"github.com/shibashis07/time-logger/internal/domain"
	"github.com/shibashis07/time-logger/internal/errors"
)

// Compute converts two "HH:MM" times into whole elapsed minutes. Both times
// are anchored to ref's calendar date, so a pair that crosses midnight is
// rejected rather than wrapped to the next day.
func Compute(startTime, endTime string, ref time.Time) (int, error) {
	start, err := parseClock("start time", startTime, ref)
	if err != nil {
		return 0, err
	}
	end, err := parseClock("end time", endTime, ref)
	if err != nil {
		return 0, err
	}

	minutes := int(end.Sub(start) / time.Minute)
	if minutes <= 0 {
		return 0, errors.NewNonPositiveDurationError(startTime, endTime)
	}
	return minutes, nil
}

// parseClock parses an "HH:MM" value and anchors it to ref's calendar date.
func parseClock(field, value string, ref time.Time) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, errors.NewMissingFieldError(field)
	}

	clock, err := time.Parse(domain.ClockLayout, value)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError(field, value, "expected HH:MM")
	}

	return time.Date(ref.Year(), ref.Month(), ref.Day(),
		clock.Hour(), clock.Minute(), 0, 0, ref.Location()), nil
}
