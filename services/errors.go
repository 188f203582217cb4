package services

import "errors"

// ValidationError reports input the core refuses to apply.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

func newValidationError(msg string) error {
	return ValidationError{Message: msg}
}

// IsValidation tells business rule violations apart from storage failures.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

var ErrEmptyCart = newValidationError("cart is empty")
