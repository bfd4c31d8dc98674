package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRatio reports a mix ratio that is not a colon-delimited list of positive integers.
	ErrInvalidRatio = errors.New("invalid mix ratio")
	// ErrInvalidDimension reports a negative or non-finite geometric input.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidCount reports a negative or non-integral element count.
	ErrInvalidCount = errors.New("invalid count")
	// ErrEstimateNotFound is returned by repositories when no estimate has the requested id.
	ErrEstimateNotFound = errors.New("estimate not found")
)

// ValidationError describes which input failed validation and why.
// It unwraps to one of the Err* sentinels above.
type ValidationError struct {
	Field string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s=%v", e.Err, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is an input validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidRatio) ||
		errors.Is(err, ErrInvalidDimension) ||
		errors.Is(err, ErrInvalidCount)
}
