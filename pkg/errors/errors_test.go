package errors

import (
	stderrors "errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "bad value: %d", 42)
	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidConfig)
	}
	if err.Message != "bad value: 42" {
		t.Errorf("Message = %q, want %q", err.Message, "bad value: 42")
	}
	want := "INVALID_CONFIG: bad value: 42"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeWriterFailure, cause, "write %s", "slice_3")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	want := "WRITER_FAILURE: write slice_3: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeDegenerateMesh, "no faces")
	if !Is(err, ErrCodeDegenerateMesh) {
		t.Error("Is() = false, want true for matching code")
	}
	if Is(err, ErrCodeInvalidSTL) {
		t.Error("Is() = true, want false for different code")
	}
	if Is(stderrors.New("plain"), ErrCodeDegenerateMesh) {
		t.Error("Is() = true, want false for plain error")
	}
	if Is(nil, ErrCodeDegenerateMesh) {
		t.Error("Is() = true, want false for nil error")
	}
}

func TestIs_WrappedChain(t *testing.T) {
	inner := New(ErrCodeOutlineFailed, "too few points")
	outer := Wrap(ErrCodeInternal, inner, "compute outline")

	// The outermost code wins; Is reports the first *Error in the chain.
	if !Is(outer, ErrCodeInternal) {
		t.Error("Is() should match the outermost code")
	}
	if GetCode(outer) != ErrCodeInternal {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeInternal)
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidFormat, "x")); got != ErrCodeInvalidFormat {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidFormat)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidPath, "no such dir")); got != "no such dir" {
		t.Errorf("UserMessage() = %q, want %q", got, "no such dir")
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain")
	}
}

func TestValidateLayers(t *testing.T) {
	if err := ValidateLayers(1); err != nil {
		t.Errorf("ValidateLayers(1) = %v, want nil", err)
	}
	if err := ValidateLayers(0); !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("ValidateLayers(0) = %v, want INVALID_CONFIG", err)
	}
	if err := ValidateLayers(-3); !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("ValidateLayers(-3) = %v, want INVALID_CONFIG", err)
	}
}

func TestValidateOutlineOffset(t *testing.T) {
	for _, d := range []float64{MinOutlineOffset, 0.5, MaxOutlineOffset} {
		if err := ValidateOutlineOffset(d); err != nil {
			t.Errorf("ValidateOutlineOffset(%g) = %v, want nil", d, err)
		}
	}
	for _, d := range []float64{0, 0.05, 10.5, -1} {
		if err := ValidateOutlineOffset(d); !Is(err, ErrCodeInvalidConfig) {
			t.Errorf("ValidateOutlineOffset(%g) = %v, want INVALID_CONFIG", d, err)
		}
	}
}
