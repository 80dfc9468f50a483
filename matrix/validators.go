// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/dimension/field checks here.
//   - Return sentinel errors wrapped with a validator tag so call sites can wrap uniformly.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Dim → Field).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/coxeter/field"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameField ensures a and b share one base field.
// Assumes a and b are not nil.
func ValidateSameField(a, b *Matrix) error {
	if !a.f.Equal(b.f) {
		return validatorErrorf("ValidateSameField",
			fmt.Errorf("%s vs %s: %w", a.f, b.f, ErrIncompatibleField))
	}

	return nil
}

// ValidateSameDim ensures a and b have equal dimension.
// Assumes a and b are not nil.
func ValidateSameDim(a, b *Matrix) error {
	if a.n != b.n {
		return validatorErrorf("ValidateSameDim",
			fmt.Errorf("%d vs %d: %w", a.n, b.n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible is the composite NotNil(a) → NotNil(b) → SameField → SameDim.
//
// Field compatibility is checked before the dimension so that mixing fields
// is always reported as ErrIncompatibleField.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateSameField(a, b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateSameDim(a, b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}

	return nil
}

// ValidateVecLen ensures v has exactly n entries, each initialised and over f.
//
// Errors:
//   - ErrDimensionOrTypeMismatch for a wrong length or a zero-value entry.
//   - ErrIncompatibleField for an entry over another field.
func ValidateVecLen(f field.Field, v Vector, n int) error {
	if len(v) != n {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("len=%d, want %d: %w", len(v), n, ErrDimensionOrTypeMismatch))
	}
	for i, e := range v {
		if !e.IsValid() {
			return validatorErrorf("ValidateVecLen",
				fmt.Errorf("entry %d: %w: %w", i, ErrDimensionOrTypeMismatch, ErrInvalidElement))
		}
		if !e.Field().Equal(f) {
			return validatorErrorf("ValidateVecLen",
				fmt.Errorf("entry %d: %w", i, ErrIncompatibleField))
		}
	}

	return nil
}
