// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Selection errors.
	ErrInvalidSelection = errors.New("invalid selection")

	// Dataset errors.
	ErrMalformedRecord = errors.New("malformed record")
	ErrMissingColumn   = errors.New("missing column")
	ErrNotFound        = errors.New("not found")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// InvalidSelection wraps ErrInvalidSelection with the field and rejected value.
func InvalidSelection(field, value string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidSelection, field, value)
}

// IsLoadFailure reports whether err came from reading a malformed dataset.
func IsLoadFailure(err error) bool {
	return errors.Is(err, ErrMalformedRecord) || errors.Is(err, ErrMissingColumn)
}
