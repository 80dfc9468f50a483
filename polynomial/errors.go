// SPDX-License-Identifier: MIT

package polynomial

import "errors"

var (
	// ErrZeroDivisor is returned when dividing by the zero polynomial.
	ErrZeroDivisor = errors.New("polynomial: division by zero polynomial")

	// ErrNotMonic is returned when exact division requires a monic divisor.
	ErrNotMonic = errors.New("polynomial: divisor is not monic")

	// ErrInvalidIndex is returned for a cyclotomic index outside [1, MaxCyclotomicIndex].
	ErrInvalidIndex = errors.New("polynomial: cyclotomic index out of range")

	// ErrInexactDivision signals a non-zero remainder where exact division was required.
	ErrInexactDivision = errors.New("polynomial: division is not exact")
)
