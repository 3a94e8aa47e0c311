// Package errors provides error handling utilities.
package errors

import (
	"errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeIO indicates a terminal or file I/O error
	TypeIO Type = "IO_ERROR"

	// TypeAborted indicates the user closed the input stream
	TypeAborted Type = "ABORTED"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"

	// TypeBlankInput indicates an empty response where text was required
	TypeBlankInput Type = "BLANK_INPUT"

	// TypeInvalidNumberFormat indicates a response that is not a number
	TypeInvalidNumberFormat Type = "INVALID_NUMBER_FORMAT"

	// TypeNonPositiveNumber indicates a number that is zero or negative
	TypeNonPositiveNumber Type = "NON_POSITIVE_NUMBER"

	// TypeInvalidYesNo indicates a response other than yes/y/no/n
	TypeInvalidYesNo Type = "INVALID_YES_NO"

	// TypeInvalidProfitGoalFormat indicates an unparseable profit goal
	TypeInvalidProfitGoalFormat Type = "INVALID_PROFIT_GOAL_FORMAT"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether any error in err's chain is of type t.
func IsType(err error, t Type) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// IO creates an I/O error
func IO(message string, cause error) *Error {
	return Wrap(TypeIO, message, cause)
}

// Aborted creates an error for a closed input stream
func Aborted(cause error) *Error {
	return Wrap(TypeAborted, "input closed before the calculation finished", cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
