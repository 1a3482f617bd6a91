package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatIncludesCode(t *testing.T) {
	err := New(PathFormat, "bad path")
	if got := err.Error(); !strings.Contains(got, string(PathFormat)) || !strings.Contains(got, "bad path") {
		t.Errorf("Unexpected error string: %q", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(StorageError, "insert failed", cause)

	if !errors.Is(err, cause) {
		t.Error("Wrapped error should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Cause missing from message: %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(LimitRange, "x")); got != LimitRange {
		t.Errorf("Expected LIMIT_RANGE, got %s", got)
	}
	wrapped := fmt.Errorf("context: %w", New(UnknownVendor, "x"))
	if got := CodeOf(wrapped); got != UnknownVendor {
		t.Errorf("CodeOf should see through wrapping, got %s", got)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != InternalError {
		t.Errorf("Plain errors map to INTERNAL_ERROR, got %s", got)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err      *ValidatorError
		code     ErrorCode
		contains string
	}{
		{NewPathFormatError("@x", "missing vendor"), PathFormat, "missing vendor"},
		{NewUnknownVendorError("huawei"), UnknownVendor, "huawei"},
		{NewLimitRangeError(500), LimitRange, "500"},
	}
	for _, tt := range tests {
		if tt.err.Code != tt.code {
			t.Errorf("Expected code %s, got %s", tt.code, tt.err.Code)
		}
		if !strings.Contains(tt.err.Error(), tt.contains) {
			t.Errorf("Expected %q in %q", tt.contains, tt.err.Error())
		}
	}
}

func TestWithDetails(t *testing.T) {
	err := New(LimitRange, "limit").WithDetails(map[string]int{"limit": 0})
	if err.Details == nil {
		t.Error("Details not attached")
	}
}
