package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNonEmptyString(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsNonEmptyString("Reading"))
	assert.True(t, v.IsNonEmptyString("  Reading  "))
	assert.False(t, v.IsNonEmptyString(""))
	assert.False(t, v.IsNonEmptyString("   "))
	assert.False(t, v.IsNonEmptyString("\t\n"))
}

func TestIsValidClockTime(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		value string
		valid bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"12:60", false},
		{"9:30", false},
		{"09:3", false},
		{"0930", false},
		{"morning", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.valid, v.IsValidClockTime(tt.value))
		})
	}
}

func TestIsValidDayKey(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidDayKey("2025-03-14"))
	assert.False(t, v.IsValidDayKey("2025-13-01"))
	assert.False(t, v.IsValidDayKey("14/03/2025"))
	assert.False(t, v.IsValidDayKey(""))
}

func TestIsValidActivityName(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidActivityName("Reading"))
	assert.True(t, v.IsValidActivityName(`Lunch, "quick"`))
	assert.True(t, v.IsValidActivityName("Project alpha (sprint 3)"))
	assert.False(t, v.IsValidActivityName("line\nbreak"))
	assert.False(t, v.IsValidActivityName("tab\tseparated"))
}

func TestIsValidStringLength(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidStringLength("abc", 1, 255))
	assert.True(t, v.IsValidStringLength("  abc  ", 3, 3))
	assert.False(t, v.IsValidStringLength("", 1, 255))
	assert.False(t, v.IsValidStringLength("abcd", 1, 3))
}
