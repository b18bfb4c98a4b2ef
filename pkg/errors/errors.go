// Package errors defines the error taxonomy used across revend.
package errors

import (
	"fmt"
)

// Error types
const (
	// ErrConfig is returned when the configuration file is missing or malformed
	ErrConfig = "config"

	// ErrRemoteQuery is returned when resolving the latest release fails
	ErrRemoteQuery = "remote_query"

	// ErrMaterialize is returned when cloning or checking out the snapshot fails
	ErrMaterialize = "materialize"

	// ErrInternal is returned when there is an internal error
	ErrInternal = "internal"
)

// Error represents an error in the application
type Error struct {
	// Type is the error type
	Type string

	// Message is the error message
	Message string

	// Cause is the underlying error
	Cause error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error
func NewError(errorType, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a new configuration error
func NewConfigError(message string, cause error) *Error {
	return NewError(ErrConfig, message, cause)
}

// NewRemoteQueryError creates a new remote query error
func NewRemoteQueryError(message string, cause error) *Error {
	return NewError(ErrRemoteQuery, message, cause)
}

// NewMaterializeError creates a new materialize error
func NewMaterializeError(message string, cause error) *Error {
	return NewError(ErrMaterialize, message, cause)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, cause error) *Error {
	return NewError(ErrInternal, message, cause)
}

// IsConfig checks if the error is a configuration error
func IsConfig(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrConfig
}

// IsRemoteQuery checks if the error is a remote query error
func IsRemoteQuery(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrRemoteQuery
}

// IsMaterialize checks if the error is a materialize error
func IsMaterialize(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrMaterialize
}

// IsInternal checks if the error is an internal error
func IsInternal(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrInternal
}
