package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/shibashis07/time-logger/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	clockRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		clockRegex: regexp.MustCompile(`^\d{2}:\d{2}$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidActivityName checks if an activity name contains no control characters.
// Commas and quotes are allowed; the exporter escapes them.
func (v *Validator) IsValidActivityName(name string) bool {
	for _, r := range name {
		if r == '\n' || r == '\r' || r == '\t' || r < 0x20 {
			return false
		}
	}
	return true
}

// IsValidClockTime checks if a string is a parseable HH:MM wall-clock value
func (v *Validator) IsValidClockTime(s string) bool {
	if !v.clockRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(domain.ClockLayout, s)
	return err == nil
}

// IsValidDayKey checks if a string is a parseable YYYY-MM-DD day key
func (v *Validator) IsValidDayKey(s string) bool {
	_, err := time.Parse(domain.DayKeyLayout, s)
	return err == nil
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
