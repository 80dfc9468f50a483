// SPDX-License-Identifier: MIT
// Package: coxeter
//
// errors.go: sentinel errors for the coxeter package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach coordinates with fmt.Errorf("...: %w", ErrX).
//   - Runtime code never panics on user input; panics are confined to the
//     WithX option constructors (programmer error).

package coxeter

import "errors"

// ErrInvalidCoxeterEntry indicates a Coxeter matrix that is empty, not square,
// not symmetric, has a diagonal entry other than 1, or an off-diagonal entry
// that is negative or equal to 1.
var ErrInvalidCoxeterEntry = errors.New("coxeter: invalid Coxeter matrix entry")

// ErrIndexOutOfRange indicates a generator index outside [0, dim).
var ErrIndexOutOfRange = errors.New("coxeter: generator index out of range")

// ErrIndexTooLarge indicates the cyclotomic index required by the input
// exceeds the bound configured with WithMaxIndex.
var ErrIndexTooLarge = errors.New("coxeter: cyclotomic index exceeds configured bound")

// ErrRelationViolated indicates that a defining relation of the Coxeter group
// does not hold for the given reflection matrices.
var ErrRelationViolated = errors.New("coxeter: Coxeter relation violated")

// ErrNeedSeed indicates that Random was called without WithSeed.
var ErrNeedSeed = errors.New("coxeter: seed is required")

// ErrInvalidDimension indicates a requested dimension below 1.
var ErrInvalidDimension = errors.New("coxeter: dimension must be >= 1")
