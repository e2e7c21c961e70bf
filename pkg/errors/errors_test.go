package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidPolicy, "unknown weekday: %s", "caturday")

	if err.Code != ErrCodeInvalidPolicy {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidPolicy)
	}

	if err.Message != "unknown weekday: caturday" {
		t.Errorf("Message = %v, want %v", err.Message, "unknown weekday: caturday")
	}

	expected := "INVALID_POLICY: unknown weekday: caturday"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeSchema, cause, "failed to load table")

	if err.Code != ErrCodeSchema {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeSchema)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeDateOffAxis, "test"),
			code:     ErrCodeDateOffAxis,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeDateOffAxis, "test"),
			code:     ErrCodeSchema,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeSchema, New(ErrCodeInvalidDate, "inner"), "outer"),
			code:     ErrCodeSchema,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeSchema,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeSchema,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeEmptyAxis, "test")); got != ErrCodeEmptyAxis {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeEmptyAxis)
	}
	if got := GetCode(errors.New("plain")); got != Code("") {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeSchema, "column %q not found", "START DATE")
	if got := UserMessage(err); got != `column "START DATE" not found` {
		t.Errorf("UserMessage() = %v", got)
	}
	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage(plain) = %v", got)
	}
}
