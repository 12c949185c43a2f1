// Package errors defines the coded errors the beautty CLI maps to process
// exit codes.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes for the beautty CLI
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitUsageError      = 2
	ExitConfigError     = 3
	ExitTerminalError   = 4
	ExitExampleNotFound = 5
)

// Error carries an exit code alongside the message and cause.
type Error struct {
	Code    int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *Error) ExitCode() int {
	return e.Code
}

// New creates a new Error
func New(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an exit code
func Wrap(code int, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// UsageError returns an error for bad command-line input
func UsageError(message string) *Error {
	return New(ExitUsageError, message)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *Error {
	return Wrap(ExitConfigError, message, cause)
}

// TerminalError returns an error for terminal setup or I/O failures
func TerminalError(message string, cause error) *Error {
	return Wrap(ExitTerminalError, message, cause)
}

// ExampleNotFound returns an error for an unknown example name
func ExampleNotFound(name string) *Error {
	return New(ExitExampleNotFound, fmt.Sprintf("example not found: %s", name))
}

// ExitCode extracts the exit code from an error
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return ExitGeneralError
}
