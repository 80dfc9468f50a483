// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (wrapped with an operation
// tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import (
	"errors"

	"github.com/katalvlaran/coxeter/field"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Operations
// wrap sentinels as fmt.Errorf("Op: ...: %w", ErrX); callers use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> field compatibility -> element validity.

var (
	// ErrBadShape is returned when a matrix would have dimension 0.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that the grid passed to New is not dim×dim.
	ErrNonSquare = errors.New("matrix: grid is not square")

	// ErrOutOfRange indicates that a row or column index is outside [0, dim).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates matrices of different dimension in Mul/Equal-like operations.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDimensionOrTypeMismatch is returned by MulVec/Multiply for a vector of
	// the wrong length, a vector holding uninitialised elements, or an operand
	// that is neither *Matrix nor Vector.
	ErrDimensionOrTypeMismatch = errors.New("matrix: operand has wrong length or type")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNegativeExponent is returned by Pow for n < 0 (no inverses over the ring).
	ErrNegativeExponent = errors.New("matrix: negative exponent")
)

// Shared with package field so errors.Is matches across both layers.
var (
	// ErrIncompatibleField is returned when operands live over different cyclotomic fields.
	ErrIncompatibleField = field.ErrIncompatibleField

	// ErrInvalidElement is returned when a grid holds a zero-value field.Element.
	ErrInvalidElement = field.ErrInvalidElement
)
