package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeOutOfBounds, "index %d out of bounds", 4)

	if err.Code != ErrCodeOutOfBounds {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeOutOfBounds)
	}

	if err.Message != "index 4 out of bounds" {
		t.Errorf("Message = %v, want %v", err.Message, "index 4 out of bounds")
	}

	expected := "OUT_OF_BOUNDS: index 4 out of bounds"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("backend rejected update")
	err := Wrap(ErrCodeBackend, cause, "update Row node")

	if err.Code != ErrCodeBackend {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeBackend)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

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
			err:      New(ErrCodeShapeMismatch, "test"),
			code:     ErrCodeShapeMismatch,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeShapeMismatch, "test"),
			code:     ErrCodeOutOfBounds,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeBackend, New(ErrCodeInvariant, "inner"), "outer"),
			code:     ErrCodeBackend,
			expected: true,
		},
		{
			name:     "overlap error",
			err:      &OverlapError{},
			code:     ErrCodeOverlap,
			expected: true,
		},
		{
			name:     "overlap error wrapped with fmt",
			err:      fmt.Errorf("assign: %w", &OverlapError{}),
			code:     ErrCodeOverlap,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
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
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeReadOnly, "test"),
			expected: ErrCodeReadOnly,
		},
		{
			name:     "overlap",
			err:      &OverlapError{},
			expected: ErrCodeOverlap,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestOverlapError(t *testing.T) {
	err := &OverlapError{
		Conflicts: []Conflict{{Row: 0, Col: 0, Region: "(0, 0, 2, 1)", Owner: "Markdown(str)"}},
		Map:       "[[2 1]\n [1 0]]",
	}

	msg := err.Error()
	for _, want := range []string{"(0, 0): (0, 0, 2, 1) Markdown(str)", "[[2 1]", "overlapping: 2"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
	if err.Code() != ErrCodeOverlap {
		t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeOverlap)
	}
}
