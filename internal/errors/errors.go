// Package errors provides standardized error handling for the sweepd
// application. It defines the usage/parse error taxonomy that is fatal before
// traversal begins, and helpers for consistent error creation, wrapping, and
// inspection. Traversal and removal failures never use these types; the engine
// reports those as log lines and carries on.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Usage error kinds
	ConfigNotFound
	ConfigNotJSON
	MissingDestination
	MissingKind
	MissingPatterns
	DestinationNotFound
	DestinationNotDir
	// Parse error kinds
	ConfigNotReadable
	InvalidSchema
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// UsageError represents mistakes in how the tool was invoked: missing or
// invalid config path, missing destination/kind/patterns, destination that is
// not an existing directory. These stop the process before any traversal.
type UsageError struct {
	ApplicationError
	path string
}

// NewUsageError creates a new usage error
func NewUsageError(msg string, path string, kind ErrorKind, err error) *UsageError {
	return &UsageError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the usage error message
func (e *UsageError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the path associated with the error
func (e *UsageError) Path() string {
	return e.path
}

// ParseError represents a rules file that was found but could not be decoded:
// unreadable content or valid JSON that does not match the rule schema.
type ParseError struct {
	ApplicationError
	path string
}

// NewParseError creates a new parse error
func NewParseError(msg string, path string, kind ErrorKind, err error) *ParseError {
	return &ParseError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the parse error message
func (e *ParseError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the rules file path associated with the error
func (e *ParseError) Path() string {
	return e.path
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsUsageError checks if the error is a usage error
func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

// IsParseError checks if the error is a parse error
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// KindOf returns the kind of an application error, or Unknown for errors
// outside the taxonomy. Concrete usage/parse errors win over plain wrapping
// errors anywhere in the chain.
func KindOf(err error) ErrorKind {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return usageErr.Kind()
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Kind()
	}
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return Unknown
}
