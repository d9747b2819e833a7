package appium

import (
	"errors"
	"fmt"
)

// ErrorCategory groups command failures by how callers should react to them.
type ErrorCategory string

const (
	ErrCategoryNotFound  ErrorCategory = "not_found"
	ErrCategoryTimeout   ErrorCategory = "timeout"
	ErrCategoryRouting   ErrorCategory = "routing"
	ErrCategoryTransport ErrorCategory = "transport"
	ErrCategoryDecode    ErrorCategory = "decode"
)

// CommandError represents a structured failure of a routed command.
type CommandError struct {
	Category ErrorCategory
	Code     string                 // Machine-readable code: no such element, wait_timeout, etc.
	Message  string                 // Human-readable message
	Details  map[string]interface{} // Additional context
	Cause    error                  // Underlying error
}

// Error implements the error interface
func (e *CommandError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *CommandError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a CommandError with the same code.
// Copies made with WithCause/WithMessage/WithDetails still match their sentinel.
func (e *CommandError) Is(target error) bool {
	t, ok := target.(*CommandError)
	if !ok {
		return false
	}
	return t.Category == e.Category && t.Code == e.Code
}

// WithCause returns a copy of the error with the given cause
func (e *CommandError) WithCause(cause error) *CommandError {
	return &CommandError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  e.Details,
		Cause:    cause,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *CommandError) WithMessage(msg string) *CommandError {
	return &CommandError{
		Category: e.Category,
		Code:     e.Code,
		Message:  msg,
		Details:  e.Details,
		Cause:    e.Cause,
	}
}

// WithDetails returns a copy of the error with additional details
func (e *CommandError) WithDetails(details map[string]interface{}) *CommandError {
	merged := make(map[string]interface{})
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &CommandError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  merged,
		Cause:    e.Cause,
	}
}

// Predefined errors. Codes of protocol errors follow the W3C WebDriver error codes.
var (
	// ErrNoSuchElement is the only retryable condition of a wait.
	ErrNoSuchElement = &CommandError{
		Category: ErrCategoryNotFound,
		Code:     "no such element",
		Message:  "element not found",
	}

	ErrWaitTimeout = &CommandError{
		Category: ErrCategoryTimeout,
		Code:     "wait_timeout",
		Message:  "wait condition timed out",
	}

	ErrRouting = &CommandError{
		Category: ErrCategoryRouting,
		Code:     "routing",
		Message:  "cannot build request url",
	}

	ErrTransport = &CommandError{
		Category: ErrCategoryTransport,
		Code:     "transport",
		Message:  "request to appium server failed",
	}

	// ErrInvalidResponse is returned when the server reply is not the expected shape.
	ErrInvalidResponse = &CommandError{
		Category: ErrCategoryDecode,
		Code:     "invalid_response",
		Message:  "unexpected response from appium server",
	}

	ErrInvalidArgument = &CommandError{
		Category: ErrCategoryRouting,
		Code:     "invalid argument",
		Message:  "invalid command argument",
	}
)

// WebDriverError is an error reply sent by the server, e.g.
// {"value":{"error":"no such element","message":"...","stacktrace":"..."}}.
type WebDriverError struct {
	Status     int
	Code       string
	Message    string
	Stacktrace string
}

func (e *WebDriverError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is maps the protocol code onto the sentinel taxonomy. "no such element" is
// the not-found condition; everything else is a transport failure.
func (e *WebDriverError) Is(target error) bool {
	switch target {
	case ErrNoSuchElement:
		return e.Code == ErrNoSuchElement.Code
	case ErrTransport:
		return e.Code != ErrNoSuchElement.Code
	}
	return false
}

// IsNotFound reports whether err is the not-found condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoSuchElement)
}
