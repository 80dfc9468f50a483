// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures over a few cyclotomic fields.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coxeter/field"
	"github.com/katalvlaran/coxeter/matrix"
)

// MustInts builds a matrix from an integer grid or fails the test.
func MustInts(t testing.TB, f field.Field, grid [][]int64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewFromInts(f, grid)
	require.NoError(t, err)

	return m
}

// rotation5 returns the 2×2 matrix [[0,-1],[1,t]] over Q(ζ_10) with
// t = ζ_10² + ζ_10⁻² = 2cos(2π/5); its eigenvalues are primitive fifth roots
// of unity, so it has order 5.
func rotation5(t testing.TB) *matrix.Matrix {
	t.Helper()
	f := field.MustNew(10)
	z := make([]int64, 10)
	z[2], z[8] = 1, 1
	trace, err := f.FromPowers(z)
	require.NoError(t, err)
	m, err := matrix.New(f, [][]field.Element{
		{f.Zero(), f.Int(-1)},
		{f.One(), trace},
	})
	require.NoError(t, err)

	return m
}
