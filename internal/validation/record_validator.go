package validation

import (
	"github.com/shibashis07/time-logger/internal/domain"
)

// RecordValidator provides validation for ActivityRecord submissions
type RecordValidator struct {
	validator *Validator
}

// NewRecordValidator creates a new record validator
func NewRecordValidator() *RecordValidator {
	return &RecordValidator{
		validator: NewValidator(),
	}
}

// ValidateSubmission validates raw submission fields before any duration
// computation or storage happens. All three fields must be present.
func (rv *RecordValidator) ValidateSubmission(activity, startTime, endTime string) error {
	validationError := NewValidationError()

	trimmedActivity := rv.validator.TrimAndValidateString(activity)
	if !rv.validator.IsNonEmptyString(trimmedActivity) {
		validationError.AddRequiredError("activity")
	} else {
		if !rv.validator.IsValidStringLength(trimmedActivity, 1, 255) {
			validationError.AddInvalidLengthError("activity", trimmedActivity, 1, 255)
		}
		if !rv.validator.IsValidActivityName(trimmedActivity) {
			validationError.AddInvalidValueError("activity", trimmedActivity, "must not contain control characters")
		}
	}

	if !rv.validator.IsNonEmptyString(startTime) {
		validationError.AddRequiredError("start_time")
	} else if !rv.validator.IsValidClockTime(startTime) {
		validationError.AddInvalidFormatError("start_time", startTime, "HH:MM")
	}

	if !rv.validator.IsNonEmptyString(endTime) {
		validationError.AddRequiredError("end_time")
	} else if !rv.validator.IsValidClockTime(endTime) {
		validationError.AddInvalidFormatError("end_time", endTime, "HH:MM")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateRecord validates a fully-built domain.ActivityRecord before it is
// handed to a store.
func (rv *RecordValidator) ValidateRecord(record domain.ActivityRecord) error {
	validationError := NewValidationError()

	if !record.IsValid() {
		validationError.AddInvalidValueError("record", record, "fails basic validation")
	}

	if record.DurationMinutes <= 0 {
		validationError.AddInvalidValueError("duration_minutes", record.DurationMinutes, "must be positive")
	}

	if record.Date != "" && !rv.validator.IsValidDayKey(record.Date) {
		validationError.AddInvalidFormatError("date", record.Date, "YYYY-MM-DD")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateRecordID validates a record id for deletion
func (rv *RecordValidator) ValidateRecordID(id string) error {
	if !rv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("record_id")
		return validationError
	}
	return nil
}

// GetValidActivityName returns a cleaned activity name if valid
func (rv *RecordValidator) GetValidActivityName(name string) (string, error) {
	trimmed := rv.validator.TrimAndValidateString(name)

	validationError := NewValidationError()
	if !rv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("activity")
	} else if !rv.validator.IsValidActivityName(trimmed) {
		validationError.AddInvalidValueError("activity", trimmed, "must not contain control characters")
	}

	if validationError.HasErrors() {
		return "", validationError
	}
	return trimmed, nil
}
