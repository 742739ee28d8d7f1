// Package errors is hyprpier's error taxonomy. Every failure that crosses a
// package boundary is a *PierError carrying a stable Code, so callers and
// tests branch on codes instead of message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure category
type ErrorCode string

const (
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Profile and binding documents
	ErrIO         ErrorCode = "IO"
	ErrParse      ErrorCode = "PARSE"
	ErrValidation ErrorCode = "VALIDATION"
	ErrNotFound   ErrorCode = "NOT_FOUND"

	// Control socket
	ErrAlreadyRunning ErrorCode = "ALREADY_RUNNING"
	ErrProtocol       ErrorCode = "PROTOCOL"
	ErrEnvironment    ErrorCode = "ENVIRONMENT"

	ErrConfig ErrorCode = "CONFIG"

	// hyprctl and monitors.conf
	ErrApply ErrorCode = "APPLY"
)

// PierError is a coded error. Details hold machine-readable context such
// as the path or profile involved; they are not part of Error().
type PierError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error returns the message followed by the wrapped cause. The code is
// left out because this text reaches users and daemon clients verbatim.
func (e *PierError) Error() string {
	if e.Wrapped != nil {
		return e.Message + ": " + e.Wrapped.Error()
	}
	return e.Message
}

func (e *PierError) Unwrap() error {
	return e.Wrapped
}

// Is matches any *PierError with the same code
func (e *PierError) Is(target error) bool {
	var other *PierError
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// WithDetail attaches key=value context and returns e for chaining
func (e *PierError) WithDetail(key string, value interface{}) *PierError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func New(code ErrorCode, message string) *PierError {
	return &PierError{Code: code, Message: message, Details: map[string]interface{}{}}
}

func Newf(code ErrorCode, format string, args ...interface{}) *PierError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap returns nil when err is nil, so it can wrap a call result directly
func Wrap(err error, code ErrorCode, message string) *PierError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PierError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// IsErrorCode reports whether the outermost PierError in err carries code.
// Use HasErrorCode to search the whole chain.
func IsErrorCode(err error, code ErrorCode) bool {
	var e *PierError
	return errors.As(err, &e) && e.Code == code
}

// HasErrorCode reports whether any PierError in the chain carries code
func HasErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var e *PierError
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Wrapped
	}
	return false
}

// GetErrorCode returns the outermost code, or ErrUnknown for foreign errors
func GetErrorCode(err error) ErrorCode {
	var e *PierError
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the outermost PierError's details, or nil
func GetErrorDetails(err error) map[string]interface{} {
	var e *PierError
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}
