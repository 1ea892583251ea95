package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeShadowed, "cannot shadow %q", "x")

	if err.Code != ErrCodeShadowed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeShadowed)
	}

	if err.Message != `cannot shadow "x"` {
		t.Errorf("Message = %v, want %v", err.Message, `cannot shadow "x"`)
	}

	expected := `SHADOWED: cannot shadow "x"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeHypergraph, cause, "building hypergraph")

	if err.Code != ErrCodeHypergraph {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeHypergraph)
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
			err:      New(ErrCodeAliased, "test"),
			code:     ErrCodeAliased,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeAliased, "test"),
			code:     ErrCodeShadowed,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeThunkOutput, errors.New("inner"), "outer"),
			code:     ErrCodeThunkOutput,
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInternal,
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
	if got := GetCode(New(ErrCodeUndefinedVariable, "test")); got != ErrCodeUndefinedVariable {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeUndefinedVariable)
	}

	if got := GetCode(errors.New("plain")); got != Code("") {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeNoOutput, "operation has no output")
	if got := UserMessage(err); got != "operation has no output" {
		t.Errorf("UserMessage() = %v, want %v", got, "operation has no output")
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage() = %v, want %v", got, "plain error")
	}
}
