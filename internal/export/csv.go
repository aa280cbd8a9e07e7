// Package export serializes activity records to portable tabular text.
// Producing the text is all this package does; writing it to a file or
// stream is the caller's concern.
package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shibashis07/time-logger/internal/domain"
)

// Header is the CSV column set, one row per record underneath.
var Header = []string{"Activity", "Start Time", "End Time", "Duration (minutes)"}

// CSV renders records as CSV text in input order. Fields containing commas
// or quotes are double-quote wrapped with internal quotes doubled.
func CSV(records []*domain.ActivityRecord) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if err := writer.Write(Header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Activity,
			record.StartTime,
			record.EndTime,
			strconv.Itoa(record.DurationMinutes),
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return sb.String(), nil
}

// Filename builds the export file name: the base name, optionally suffixed
// with the given day in YYYY-MM-DD form.
func Filename(base string, day time.Time, withDate bool) string {
	if withDate {
		return fmt.Sprintf("%s-%s.csv", base, day.Format(domain.DayKeyLayout))
	}
	return base + ".csv"
}
