// SPDX-License-Identifier: MIT

// Package matrix: operand types.
// Operand is a sealed sum type: only *Matrix and Vector implement it, so the
// multiplication mode is chosen by the caller's static type, never inferred
// from the runtime shape of a value.
package matrix

import "github.com/katalvlaran/coxeter/field"

// Operand is the right-hand side of Matrix.Multiply: either *Matrix or Vector.
type Operand interface {
	operand()
}

// Vector is a column vector of field elements.
type Vector []field.Element

func (*Matrix) operand() {}
func (Vector) operand()  {}

// Compile-time assertions for sealed-variant conformance.
var (
	_ Operand = (*Matrix)(nil)
	_ Operand = Vector(nil)
)

// NewVector lifts the integers xs into f.
func NewVector(f field.Field, xs ...int64) Vector {
	v := make(Vector, len(xs))
	for i, x := range xs {
		v[i] = f.Int(x)
	}

	return v
}

// Equal reports entrywise equality (including fields).
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if !v[i].Equal(w[i]) {
			return false
		}
	}

	return true
}
