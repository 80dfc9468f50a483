// SPDX-License-Identifier: MIT

package coxeter

import (
	"fmt"

	"github.com/katalvlaran/coxeter/field"
	"github.com/katalvlaran/coxeter/matrix"
)

const (
	methodReflection = "ReflectionMatrix"
	methodWord       = "WordMatrix"
)

// ReflectionMatrix returns the matrix R of the simple reflection r_k acting on
// the simple-root basis: column j holds the coordinates of
// r_k(a_j) = a_j − C[k][j]·a_k.
//
//   - column k is −e_k;
//   - column j≠k is e_j with row k replaced by −C[k][j].
//
// The result lives in C's field; no new field is constructed.
//
// Errors:
//   - matrix.ErrNilMatrix if C is nil.
//   - ErrIndexOutOfRange unless 0 <= k < C.Dim().
func ReflectionMatrix(C *matrix.Matrix, k int) (*matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(C); err != nil {
		return nil, fmt.Errorf("%s: %w", methodReflection, err)
	}
	n := C.Dim()
	if k < 0 || k >= n {
		return nil, fmt.Errorf("%s: k=%d not in [0,%d): %w", methodReflection, k, n, ErrIndexOutOfRange)
	}
	f := C.Field()
	row, err := C.Row(k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodReflection, err)
	}

	grid := make([][]field.Element, n)
	for i := range grid {
		grid[i] = make([]field.Element, n)
		for j := range grid[i] {
			grid[i][j] = f.Zero()
		}
	}
	for j := 0; j < n; j++ {
		if j == k {
			grid[k][k] = f.Int(-1)
			continue
		}
		grid[j][j] = f.One()
		grid[k][j] = row[j].Neg()
	}

	R, err := matrix.New(f, grid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodReflection, err)
	}

	return R, nil
}

// Reflections returns the matrices of all simple reflections in index order.
func Reflections(C *matrix.Matrix) ([]*matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(C); err != nil {
		return nil, fmt.Errorf("Reflections: %w", err)
	}
	out := make([]*matrix.Matrix, C.Dim())
	for k := range out {
		R, err := ReflectionMatrix(C, k)
		if err != nil {
			return nil, fmt.Errorf("Reflections: %w", err)
		}
		out[k] = R
	}

	return out, nil
}

// WordMatrix returns R_{w[0]}·R_{w[1]}·…·R_{w[len-1]}, the matrix of the group
// element spelled by word. The empty word yields the identity.
func WordMatrix(C *matrix.Matrix, word []int) (*matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(C); err != nil {
		return nil, fmt.Errorf("%s: %w", methodWord, err)
	}
	acc, err := matrix.Identity(C.Field(), C.Dim())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodWord, err)
	}
	cache := make(map[int]*matrix.Matrix)
	for pos, k := range word {
		R, ok := cache[k]
		if !ok {
			if R, err = ReflectionMatrix(C, k); err != nil {
				return nil, fmt.Errorf("%s: letter %d: %w", methodWord, pos, err)
			}
			cache[k] = R
		}
		if acc, err = acc.Mul(R); err != nil {
			return nil, fmt.Errorf("%s: %w", methodWord, err)
		}
	}

	return acc, nil
}
