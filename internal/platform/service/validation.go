package service

import "errors"

// ErrValidation is the sentinel all form-input failures unwrap to.
var ErrValidation = errors.New("validation error")

// ValidationError carries a user-facing description of what was wrong
// with the submitted form input. It unwraps to ErrValidation so handlers
// match it with errors.Is.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return "validation error: " + e.Detail }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func newValidationError(detail string) error {
	return &ValidationError{Detail: detail}
}

const minPasswordLength = 8

func validatePassword(password, confirm string) error {
	if len(password) < minPasswordLength {
		return newValidationError("password must be at least 8 characters")
	}
	if password != confirm {
		return newValidationError("password confirmation does not match")
	}
	return nil
}
