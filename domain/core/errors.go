package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Degenerate inputs: the test is well-formed but a variance or
	// expected-count denominator collapses to zero, so the statistic cannot
	// be computed. Distinguishable from "not random".
	ErrDegenerateInput = errors.New("degenerate input")

	// Argument validation errors
	ErrSequenceTooShort = errors.New("sequence too short")
	ErrAlphabetTooLarge = errors.New("too many distinct values")

	// Distribution helper domain errors
	ErrInvalidDegreesOfFreedom = errors.New("invalid degrees of freedom")
)

// Error constructors with context
func NewSequenceLengthError(test string, minLen, got int) error {
	return fmt.Errorf("%w: %s requires at least %d elements, got %d", ErrSequenceTooShort, test, minLen, got)
}

func NewDegenerateInputError(test, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrDegenerateInput, test, reason)
}

func NewAlphabetError(test string, distinct, maxDistinct int) error {
	return fmt.Errorf("%w: %s supports at most %d distinct values, got %d", ErrAlphabetTooLarge, test, maxDistinct, distinct)
}

func NewDegreesOfFreedomError(dof int) error {
	return fmt.Errorf("%w: %d", ErrInvalidDegreesOfFreedom, dof)
}

// Error checking helpers
func IsDegenerateInput(err error) bool {
	return errors.Is(err, ErrDegenerateInput)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrSequenceTooShort) ||
		errors.Is(err, ErrAlphabetTooLarge)
}
