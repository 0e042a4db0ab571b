package services

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. Controllers translate these into HTTP responses;
// nothing here is fatal to the process.
var (
	// ErrNotFound covers an unknown id and an ownership mismatch alike,
	// so a caller cannot probe for the existence of another user's rows.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart is returned by checkout when the cart has no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrConflict is returned on a duplicate unique key, e.g. registering
	// an email that is already taken.
	ErrConflict = errors.New("conflict")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries field-level messages in the same shape the
// validate package produces, so controllers can hand them straight to
// response.ValidationError.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

// NewValidationError builds a ValidationError from a field→message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// AsValidation unwraps err into a *ValidationError when possible.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
