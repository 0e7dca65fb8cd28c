package apperr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Handlers pick HTTP status codes with errors.Is;
// services attach context with the wrapping helpers below.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrInvalidState = errors.New("invalid state")
)

func NotFound(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}

func Validation(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrValidation)
}

func InvalidState(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidState)
}

// Store wraps an underlying persistence failure with the operation that hit it.
// Anything that is not one of the sentinels above is treated as a store error
// by the boundary layer.
func Store(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
