// SPDX-License-Identifier: MIT
// Package: coxeter
//
// cartan.go - CartanMatrix(M) and the minimal cyclotomic index.
//
// Contract:
//   - C[i][i] = 2.
//   - C[i][j] = C[j][i] = −(ζ_k + ζ_k⁻¹), k = 2·m_ij, for finite m_ij.
//   - C[i][j] = C[j][i] = −2 for m_ij = ∞.
//   - ζ_k is written as ζ_m^(m/k) in Q(ζ_m), m = MinimalIndex(M).
//
// Complexity:
//   - O(n²) entries, each built from a length-m vector reduced modulo Φ_m.

package coxeter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coxeter/field"
	"github.com/katalvlaran/coxeter/matrix"
	"github.com/katalvlaran/coxeter/numtheory"
)

const (
	methodCartan       = "CartanMatrix"
	methodMinimalIndex = "MinimalIndex"
	baseIndex          = 2
)

// MinimalIndex returns the smallest m such that every Cartan entry of M lies
// in Q(ζ_m): m = lcm(2, 2·m_ij) over the pairs i<j of finite order.
// Infinite-order pairs do not participate.
func MinimalIndex(M CoxeterMatrix) (int, error) {
	m := baseIndex
	var err error
	for i := 0; i < M.n; i++ {
		for j := i + 1; j < M.n; j++ {
			mij := M.rows[i][j]
			if mij == Infinite {
				continue
			}
			if mij > math.MaxInt/2 {
				return 0, fmt.Errorf("%s: pair (%d,%d): 2·%d: %w", methodMinimalIndex, i, j, mij, numtheory.ErrOverflow)
			}
			if m, err = numtheory.LCM(m, 2*mij); err != nil {
				return 0, fmt.Errorf("%s: pair (%d,%d): %w", methodMinimalIndex, i, j, err)
			}
		}
	}

	return m, nil
}

// CartanMatrix builds the exact Cartan matrix of M. It reads WithMinIndex and
// WithMaxIndex; the Random options have no effect.
//
// Implementation:
//   - Stage 1: m = MinimalIndex(M), folded with WithMinIndex, checked against WithMaxIndex.
//   - Stage 2: obtain the field Q(ζ_m) (base polynomial Φ_m).
//   - Stage 3: fill the diagonal with 2 and each off-diagonal pair once.
//
// Errors:
//   - ErrIndexTooLarge when a WithMaxIndex bound is exceeded.
//   - numtheory.ErrOverflow if 2·m_ij or the lcm fold overflows int.
//   - polynomial.ErrInvalidIndex if the index exceeds polynomial.MaxCyclotomicIndex.
func CartanMatrix(M CoxeterMatrix, opts ...Option) (*matrix.Matrix, error) {
	if M.n == 0 {
		return nil, fmt.Errorf("%s: empty: %w", methodCartan, ErrInvalidCoxeterEntry)
	}
	cfg := gatherOptions(opts...)

	m, err := MinimalIndex(M)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCartan, err)
	}
	if m, err = numtheory.LCM(m, cfg.minIndex); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCartan, err)
	}
	if cfg.maxIndex > 0 && m > cfg.maxIndex {
		return nil, fmt.Errorf("%s: m=%d > %d: %w", methodCartan, m, cfg.maxIndex, ErrIndexTooLarge)
	}

	f, err := field.New(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCartan, err)
	}

	n := M.n
	grid := make([][]field.Element, n)
	for i := range grid {
		grid[i] = make([]field.Element, n)
		grid[i][i] = f.Int(2)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			e, err := cartanEntry(f, M.rows[i][j])
			if err != nil {
				return nil, fmt.Errorf("%s: (%d,%d): %w", methodCartan, i, j, err)
			}
			grid[i][j], grid[j][i] = e, e
		}
	}

	C, err := matrix.New(f, grid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCartan, err)
	}

	return C, nil
}

// cartanEntry returns −(ζ_k + ζ_k⁻¹) with k = 2·mij, or −2 for infinite order.
func cartanEntry(f field.Field, mij int) (field.Element, error) {
	if mij == Infinite {
		return f.Int(-2), nil
	}
	m := f.Index()
	k := 2 * mij
	z := make([]int64, m)
	z[m/k] = -1
	z[m-m/k] = -1

	return f.FromPowers(z)
}
