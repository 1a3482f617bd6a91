// Package errors defines the stable error codes arkval reports to callers.
// Request-level failures (bad path format, bad limit) carry a code so CLI
// and MCP clients can branch without string matching; soft conditions
// (missing API, missing SDK directory, skipped file) are reported as data,
// not errors.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// PathFormat indicates an API path that does not match the
	// @{vendor}.{module}[.{name}...] grammar
	PathFormat ErrorCode = "PATH_FORMAT"
	// UnknownVendor indicates an unrecognized vendor token in an API path
	UnknownVendor ErrorCode = "UNKNOWN_VENDOR"
	// LimitRange indicates a search limit outside the accepted [1,100] range
	LimitRange ErrorCode = "LIMIT_RANGE"
	// ApiNotFound indicates a module or declaration absent from the index.
	// Soft: validate responses carry it as data, never as a request error.
	ApiNotFound ErrorCode = "API_NOT_FOUND"
	// SdkDirMissing indicates a vendor's API directory was absent at scan time
	SdkDirMissing ErrorCode = "SDK_DIR_MISSING"
	// ParseSkip indicates a declaration file that produced no declarations
	ParseSkip ErrorCode = "PARSE_SKIP"
	// StorageError indicates a build-history database failure
	StorageError ErrorCode = "STORAGE_ERROR"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// ValidatorError is an error with a stable code and optional details
type ValidatorError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error
}

// New creates a ValidatorError with the given code and message
func New(code ErrorCode, message string) *ValidatorError {
	return &ValidatorError{Code: code, Message: message}
}

// Wrap creates a ValidatorError around an underlying cause
func Wrap(code ErrorCode, message string, cause error) *ValidatorError {
	return &ValidatorError{Code: code, Message: message, cause: cause}
}

// Error implements the error interface
func (e *ValidatorError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *ValidatorError) Unwrap() error {
	return e.cause
}

// WithDetails attaches structured details to the error
func (e *ValidatorError) WithDetails(details interface{}) *ValidatorError {
	e.Details = details
	return e
}

// NewPathFormatError reports an API path that failed grammar validation
func NewPathFormatError(path, reason string) *ValidatorError {
	return New(PathFormat, fmt.Sprintf("invalid API path %q: %s", path, reason))
}

// NewUnknownVendorError reports an unrecognized vendor token
func NewUnknownVendorError(token string) *ValidatorError {
	return New(UnknownVendor, fmt.Sprintf("unknown vendor prefix %q: use 'ohos' or 'hms'", token))
}

// NewLimitRangeError reports a search limit outside [1,100]
func NewLimitRangeError(limit int) *ValidatorError {
	return New(LimitRange, fmt.Sprintf("limit %d out of range: must be between 1 and 100", limit))
}

// NewInvalidParameterError reports a missing or malformed request parameter
func NewInvalidParameterError(name, detail string) *ValidatorError {
	msg := fmt.Sprintf("missing or invalid parameter %q", name)
	if detail != "" {
		msg += ": " + detail
	}
	return New(InternalError, msg)
}

// CodeOf extracts the stable code from an error chain, or InternalError
// when the error carries none.
func CodeOf(err error) ErrorCode {
	var ve *ValidatorError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return InternalError
}
