package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"
	ErrTypeMismatch   ErrorCode = "TYPE_MISMATCH"

	// Match outcomes. ErrMismatch is a control signal: it means a candidate
	// alignment failed, is always caught at the nearest choice point, and is
	// never surfaced past Matcher.Attempt.
	ErrMismatch        ErrorCode = "MATCH_MISMATCH"
	ErrBindingConflict ErrorCode = "BINDING_CONFLICT"
	ErrDepthExceeded   ErrorCode = "DEPTH_EXCEEDED"

	// Pattern errors
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"
	ErrPatternParse   ErrorCode = "PATTERN_PARSE"
	ErrRuleNotFound   ErrorCode = "RULE_NOT_FOUND"
	ErrRuleInvalid    ErrorCode = "RULE_INVALID"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Value document errors
	ErrValueLoad  ErrorCode = "VALUE_LOAD"
	ErrValueParse ErrorCode = "VALUE_PARSE"
)

// SeqmatchError represents a structured error with code and details
type SeqmatchError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SeqmatchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SeqmatchError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SeqmatchError) Is(target error) bool {
	var targetErr *SeqmatchError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SeqmatchError with the given code and message
func New(code ErrorCode, message string) *SeqmatchError {
	return &SeqmatchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SeqmatchError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SeqmatchError {
	return &SeqmatchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SeqmatchError
func Wrap(err error, code ErrorCode, message string) *SeqmatchError {
	if err == nil {
		return nil
	}
	return &SeqmatchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SeqmatchError {
	if err == nil {
		return nil
	}
	return &SeqmatchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SeqmatchError) WithDetail(key string, value interface{}) *SeqmatchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var smErr *SeqmatchError
	if errors.As(err, &smErr) {
		return smErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SeqmatchError
func GetErrorCode(err error) ErrorCode {
	var smErr *SeqmatchError
	if errors.As(err, &smErr) {
		return smErr.Code
	}
	return ErrUnknown
}

// IsMismatch reports whether err is the mismatch control signal.
func IsMismatch(err error) bool {
	return IsErrorCode(err, ErrMismatch)
}

// benignCodes are the predicate-evaluation failures that the match engine
// treats as ordinary mismatches rather than faults.
var benignCodes = map[ErrorCode]bool{
	ErrNotFound:       true,
	ErrTypeMismatch:   true,
	ErrInvalidInput:   true,
	ErrNotImplemented: true,
}

// IsBenign reports whether err belongs to the benign predicate-error
// category. Any other error from a user-supplied predicate propagates.
func IsBenign(err error) bool {
	var smErr *SeqmatchError
	if errors.As(err, &smErr) {
		return benignCodes[smErr.Code]
	}
	return false
}
