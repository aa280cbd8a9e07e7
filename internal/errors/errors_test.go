package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		err          *AppError
		expectedType ErrorType
		expectedCode string
		contains     string
	}{
		{
			name:         "missing field error",
			err:          NewMissingFieldError("activity"),
			expectedType: ErrorTypeValidation,
			expectedCode: CodeMissingField,
			contains:     "activity is required",
		},
		{
			name:         "non-positive duration error",
			err:          NewNonPositiveDurationError("10:00", "09:00"),
			expectedType: ErrorTypeValidation,
			expectedCode: CodeNonPositiveDuration,
			contains:     "end time 09:00 must be after start time 10:00",
		},
		{
			name:         "not found error",
			err:          NewNotFoundError("activity record", "abc-123"),
			expectedType: ErrorTypeNotFound,
			expectedCode: CodeNotFound,
			contains:     "activity record not found: abc-123",
		},
		{
			name:         "persistence error",
			err:          NewPersistenceError("append record", fmt.Errorf("disk full")),
			expectedType: ErrorTypePersistence,
			expectedCode: CodePersistence,
			contains:     "append record",
		},
		{
			name:         "invalid input error",
			err:          NewInvalidInputError("command", "frobnicate", "unknown command"),
			expectedType: ErrorTypeInvalidInput,
			expectedCode: CodeInvalidInput,
			contains:     "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.err.IsType(tt.expectedType))
			assert.Equal(t, tt.expectedCode, tt.err.Code)
			assert.Contains(t, tt.err.Error(), tt.contains)
		})
	}
}

func TestErrorUnwrapping(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewPersistenceError("list records", cause)

	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	require.True(t, errors.As(error(err), &appErr))
	assert.Equal(t, ErrorTypePersistence, appErr.Type)
}

func TestIsMatchesTypeAndCode(t *testing.T) {
	a := NewMissingFieldError("start time")
	b := NewMissingFieldError("end time")
	c := NewNonPositiveDurationError("10:00", "10:00")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestHasCode(t *testing.T) {
	err := NewNonPositiveDurationError("12:00", "11:00")
	assert.True(t, HasCode(err, CodeNonPositiveDuration))
	assert.False(t, HasCode(err, CodeMissingField))
	assert.False(t, HasCode(fmt.Errorf("plain"), CodeMissingField))
}

func TestGetUserMessage(t *testing.T) {
	validationErr := NewMissingFieldError("activity")
	assert.Equal(t, "activity is required", GetUserMessage(validationErr))

	persistenceErr := NewPersistenceError("append record", fmt.Errorf("io error"))
	assert.Equal(t, "A storage error occurred. Your entry was not saved; please try again.", GetUserMessage(persistenceErr))

	plainErr := fmt.Errorf("something else")
	assert.Equal(t, "something else", GetUserMessage(plainErr))
}

func TestWithContext(t *testing.T) {
	err := NewValidationError("bad record", nil).WithContext("record_id", "abc")

	value, ok := err.GetContext("record_id")
	require.True(t, ok)
	assert.Equal(t, "abc", value)

	_, ok = err.GetContext("missing")
	assert.False(t, ok)
}
