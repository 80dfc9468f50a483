// SPDX-License-Identifier: MIT

package coxeter

import "fmt"

// Infinite is the Coxeter-matrix entry for a pair of generators whose product
// has infinite order.
const Infinite = 0

// CoxeterMatrix is a validated, immutable Coxeter matrix.
type CoxeterMatrix struct {
	n    int
	rows [][]int
}

// NewCoxeterMatrix validates rows and returns a CoxeterMatrix holding a copy.
//
// Implementation:
//   - Stage 1: non-empty and square.
//   - Stage 2: M[i][i] == 1.
//   - Stage 3: for i≠j, M[i][j] == 0 or M[i][j] >= 2, and M[i][j] == M[j][i].
//
// Errors:
//   - ErrInvalidCoxeterEntry, wrapped with the offending coordinates.
func NewCoxeterMatrix(rows [][]int) (CoxeterMatrix, error) {
	n := len(rows)
	if n == 0 {
		return CoxeterMatrix{}, fmt.Errorf("NewCoxeterMatrix: empty: %w", ErrInvalidCoxeterEntry)
	}
	cp := make([][]int, n)
	for i, row := range rows {
		if len(row) != n {
			return CoxeterMatrix{}, fmt.Errorf("NewCoxeterMatrix: row %d has %d entries, want %d: %w",
				i, len(row), n, ErrInvalidCoxeterEntry)
		}
		cp[i] = append([]int(nil), row...)
	}
	for i := 0; i < n; i++ {
		if cp[i][i] != 1 {
			return CoxeterMatrix{}, fmt.Errorf("NewCoxeterMatrix: M[%d][%d]=%d, want 1: %w",
				i, i, cp[i][i], ErrInvalidCoxeterEntry)
		}
		for j := i + 1; j < n; j++ {
			v := cp[i][j]
			if v < 0 || v == 1 {
				return CoxeterMatrix{}, fmt.Errorf("NewCoxeterMatrix: M[%d][%d]=%d: %w",
					i, j, v, ErrInvalidCoxeterEntry)
			}
			if cp[j][i] != v {
				return CoxeterMatrix{}, fmt.Errorf("NewCoxeterMatrix: M[%d][%d]=%d != M[%d][%d]=%d: %w",
					i, j, v, j, i, cp[j][i], ErrInvalidCoxeterEntry)
			}
		}
	}

	return CoxeterMatrix{n: n, rows: cp}, nil
}

// MustCoxeterMatrix is NewCoxeterMatrix for literals known to be valid.
func MustCoxeterMatrix(rows [][]int) CoxeterMatrix {
	m, err := NewCoxeterMatrix(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Dim returns the number of generators.
func (c CoxeterMatrix) Dim() int { return c.n }

// Order returns m_ij (0 for infinite order). Out-of-range indices yield
// ErrIndexOutOfRange.
func (c CoxeterMatrix) Order(i, j int) (int, error) {
	if i < 0 || i >= c.n || j < 0 || j >= c.n {
		return 0, fmt.Errorf("Order(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}

	return c.rows[i][j], nil
}

// Rows returns a copy of the underlying integer matrix.
func (c CoxeterMatrix) Rows() [][]int {
	out := make([][]int, c.n)
	for i, row := range c.rows {
		out[i] = append([]int(nil), row...)
	}

	return out
}

// String renders the matrix one row per line, e.g. "[1 3 2]".
func (c CoxeterMatrix) String() string {
	s := ""
	for _, row := range c.rows {
		s += fmt.Sprintln(row)
	}

	return s
}
