// SPDX-License-Identifier: MIT
// Package matrix provides exact ring operations on Matrix values: matrix and
// matrix–vector products, powers, transpose, negation and structural
// predicates. All functions perform strict fail-fast validation and return
// fresh matrices; operands are never mutated.
//
// Notes:
//   - Every kernel validates through validators.go and wraps with matrixErrorf.
//   - Arithmetic is exact (field.Element), so predicates compare with ==, no epsilon.

package matrix

import (
	"fmt"
)

// Operation name constants for unified error wrapping.
const (
	opMul      = "Mul"
	opMulVec   = "MulVec"
	opMultiply = "Multiply"
	opPow      = "Pow"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product m·b over the shared field.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, b).
//   - Stage 2: i→k→j accumulation into a zero matrix, skipping zero m[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrIncompatibleField, ErrDimensionMismatch.
//
// Complexity:
//   - O(n³) element multiplications, each O(φ(m)²).
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n := m.n
	res := newSquare(m.f, n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			av := m.at(i, k)
			if av.IsZero() {
				continue
			}
			for j := 0; j < n; j++ {
				bv := b.at(k, j)
				if bv.IsZero() {
					continue
				}
				res.data[i*n+j] = res.data[i*n+j].MustAdd(av.MustMul(bv))
			}
		}
	}

	return res, nil
}

// MulVec returns the matrix–vector product m·v, one element per row.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrDimensionOrTypeMismatch when len(v) != Dim() or v holds zero-value elements.
//   - ErrIncompatibleField when an entry of v lives over another field.
func (m *Matrix) MulVec(v Vector) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(m.f, v, m.n); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	out := make(Vector, m.n)
	for i := 0; i < m.n; i++ {
		acc := m.f.Zero()
		for j := 0; j < m.n; j++ {
			if v[j].IsZero() {
				continue
			}
			acc = acc.MustAdd(m.at(i, j).MustMul(v[j]))
		}
		out[i] = acc
	}

	return out, nil
}

// Multiply dispatches on the sealed Operand: *Matrix yields a *Matrix via
// Mul, Vector yields a Vector via MulVec.
//
// Errors:
//   - Everything Mul/MulVec return.
//   - ErrDimensionOrTypeMismatch for a nil operand or a nil *Matrix inside it.
func (m *Matrix) Multiply(op Operand) (Operand, error) {
	switch o := op.(type) {
	case *Matrix:
		if o == nil {
			return nil, matrixErrorf(opMultiply, fmt.Errorf("nil *Matrix: %w: %w", ErrDimensionOrTypeMismatch, ErrNilMatrix))
		}
		r, err := m.Mul(o)
		if err != nil {
			return nil, err
		}
		return r, nil
	case Vector:
		r, err := m.MulVec(o)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, matrixErrorf(opMultiply, fmt.Errorf("operand %T: %w", op, ErrDimensionOrTypeMismatch))
	}
}

// Pow returns m^k by binary exponentiation; m^0 is the identity.
//
// Errors:
//   - ErrNilMatrix, ErrNegativeExponent.
//
// Complexity:
//   - O(log k) matrix products.
func (m *Matrix) Pow(k int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPow, fmt.Errorf("k=%d: %w", k, ErrNegativeExponent))
	}
	res, err := Identity(m.f, m.n)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	base := m
	for k > 0 {
		if k&1 == 1 {
			if res, err = res.Mul(base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = base.Mul(base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ.
func (m *Matrix) Transpose() *Matrix {
	res := newSquare(m.f, m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			res.data[j*m.n+i] = m.at(i, j)
		}
	}

	return res
}

// Neg returns −m.
func (m *Matrix) Neg() *Matrix {
	res := newSquare(m.f, m.n)
	for i, e := range m.data {
		res.data[i] = e.Neg()
	}

	return res
}

// Equal reports whether m and b have the same field, dimension and entries.
func (m *Matrix) Equal(b *Matrix) bool {
	if m == nil || b == nil {
		return m == b
	}
	if ValidateSameField(m, b) != nil || ValidateSameDim(m, b) != nil {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(b.data[i]) {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is the identity matrix.
//
// The scan covers the whole matrix: every diagonal entry must be the rational
// integer 1 and every off-diagonal entry in BOTH triangles must be zero, so
// the predicate is valid for non-symmetric matrices such as reflections.
//
// Complexity:
//   - O(n²), early exit on the first mismatch (row-major order).
func (m *Matrix) IsIdentity() bool {
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			e := m.at(i, j)
			if i == j {
				if !e.IsOne() {
					return false
				}
				continue
			}
			if !e.IsZero() {
				return false
			}
		}
	}

	return true
}

// IsSymmetric reports whether m[i,j] == m[j,i] for all i<j.
func (m *Matrix) IsSymmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if !m.at(i, j).Equal(m.at(j, i)) {
				return false
			}
		}
	}

	return true
}
