// SPDX-License-Identifier: MIT

package numtheory

import "errors"

var (
	// ErrNegative is returned when an operand must be non-negative.
	ErrNegative = errors.New("numtheory: negative operand")

	// ErrNonPositive is returned when an operand must be strictly positive.
	ErrNonPositive = errors.New("numtheory: operand must be > 0")

	// ErrOverflow is returned when a result does not fit into int.
	ErrOverflow = errors.New("numtheory: integer overflow")
)
