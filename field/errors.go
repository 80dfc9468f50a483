// SPDX-License-Identifier: MIT

package field

import "errors"

var (
	// ErrIncompatibleField is returned when operands live in different fields.
	ErrIncompatibleField = errors.New("field: incompatible fields")

	// ErrBadCoefficients is returned when a coefficient vector is too long.
	ErrBadCoefficients = errors.New("field: coefficient vector has wrong length")

	// ErrInvalidElement is returned when a zero-value Element is used as an operand.
	ErrInvalidElement = errors.New("field: uninitialised element")

	// ErrInvalidField is returned when a zero-value Field is used.
	ErrInvalidField = errors.New("field: uninitialised field")
)
