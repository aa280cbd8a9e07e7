package export

import (
	"encoding/csv"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shibashis07/time-logger/internal/domain"
)

func makeRecord(activity, startTime, endTime string, minutes int) *domain.ActivityRecord {
	record := domain.NewActivityRecord(activity, startTime, endTime, minutes, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC))
	return &record
}

func TestCSVEmptyRecordsProducesHeaderOnly(t *testing.T) {
	text, err := CSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "Activity,Start Time,End Time,Duration (minutes)\n", text)
}

func TestCSVPreservesInputOrder(t *testing.T) {
	text, err := CSV([]*domain.ActivityRecord{
		makeRecord("Run", "18:00", "18:40", 40),
		makeRecord("Reading", "09:00", "09:30", 30),
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Run,18:00,18:40,40", lines[1])
	assert.Equal(t, "Reading,09:00,09:30,30", lines[2])
}

func TestCSVEscapesCommasAndQuotes(t *testing.T) {
	text, err := CSV([]*domain.ActivityRecord{
		makeRecord(`Lunch, "quick"`, "12:00", "12:30", 30),
	})
	require.NoError(t, err)
	assert.Contains(t, text, `"Lunch, ""quick"""`)
}

func TestCSVRoundTrip(t *testing.T) {
	records := []*domain.ActivityRecord{
		makeRecord("Reading", "09:00", "09:30", 30),
		makeRecord(`Lunch, "quick"`, "12:00", "12:30", 30),
		makeRecord("Run", "18:00", "18:40", 40),
	}

	text, err := CSV(records)
	require.NoError(t, err)

	// A standard CSV reader reproduces the fields verbatim
	parsed, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, len(records)+1)
	assert.Equal(t, Header, parsed[0])

	for i, record := range records {
		row := parsed[i+1]
		assert.Equal(t, record.Activity, row[0])
		assert.Equal(t, record.StartTime, row[1])
		assert.Equal(t, record.EndTime, row[2])
		assert.Equal(t, strconv.Itoa(record.DurationMinutes), row[3])
	}
}

func TestCSVIsPure(t *testing.T) {
	records := []*domain.ActivityRecord{makeRecord("Reading", "09:00", "09:30", 30)}

	first, err := CSV(records)
	require.NoError(t, err)
	second, err := CSV(records)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFilename(t *testing.T) {
	day := time.Date(2025, 3, 14, 16, 45, 0, 0, time.UTC)

	assert.Equal(t, "time-log-2025-03-14.csv", Filename("time-log", day, true))
	assert.Equal(t, "time-log.csv", Filename("time-log", day, false))
}
