package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent calculation failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedBase indicates a radix other than 2, 8, 10 or 16.
	ErrUnsupportedBase = errors.New("unsupported base")

	// ErrUnsupportedOperator indicates an operator other than + or -.
	ErrUnsupportedOperator = errors.New("unsupported operator")

	// ErrNegativeValue indicates a negative value was given to the
	// repeated-division converter, which only handles magnitudes.
	ErrNegativeValue = errors.New("negative value")

	// ErrOverflow indicates the result does not fit in a signed 64-bit integer.
	ErrOverflow = errors.New("integer overflow")

	// ErrEmptyDigits indicates an empty digit string.
	ErrEmptyDigits = errors.New("empty digit string")

	// ErrInvalidDigit indicates a character that is not valid for the base.
	ErrInvalidDigit = errors.New("invalid digit")
)

// ParseError reports a digit string that could not be read in a base.
type ParseError struct {
	// Input is the offending digit string.
	Input string

	// Base is the base the input was parsed under.
	Base Base

	// Err is the underlying cause (ErrEmptyDigits, ErrInvalidDigit or ErrOverflow).
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q as %s: %v", e.Input, e.Base, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidInput, so every parse failure
// can be matched as invalid input regardless of its cause.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}
