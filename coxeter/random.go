// SPDX-License-Identifier: MIT
// Package: coxeter
//
// random.go - deterministic random Coxeter matrices.
//
// Contract:
//   - dim >= 1 (else ErrInvalidDimension).
//   - WithSeed is required (else ErrNeedSeed); the keyed PRNG makes the output
//     a pure function of (dim, seed, orders).
//   - Pairs are drawn in fixed order: i asc, then j asc with j > i.
//   - Each order is drawn uniformly; biased bytes are rejected and redrawn.

package coxeter

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/utils"
)

const methodRandom = "Random"

// Random samples a valid Coxeter matrix: each pair i<j independently takes an
// order from WithOrders (DefaultOrders unless set), chosen uniformly from
// PRNG bytes by rejection sampling.
//
// Random reads WithSeed and WithOrders; WithMinIndex and WithMaxIndex have
// no effect here.
func Random(dim int, opts ...Option) (CoxeterMatrix, error) {
	if dim < 1 {
		return CoxeterMatrix{}, fmt.Errorf("%s: dim=%d: %w", methodRandom, dim, ErrInvalidDimension)
	}
	cfg := gatherOptions(opts...)
	if cfg.seed == nil {
		return CoxeterMatrix{}, fmt.Errorf("%s: %w", methodRandom, ErrNeedSeed)
	}
	prng, err := utils.NewKeyedPRNG(cfg.seed)
	if err != nil {
		return CoxeterMatrix{}, fmt.Errorf("%s: %w", methodRandom, err)
	}

	rows := make([][]int, dim)
	for i := range rows {
		rows[i] = make([]int, dim)
		rows[i][i] = 1
	}
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			idx, err := drawIndex(prng, len(cfg.orders))
			if err != nil {
				return CoxeterMatrix{}, fmt.Errorf("%s: %w", methodRandom, err)
			}
			o := cfg.orders[idx]
			rows[i][j], rows[j][i] = o, o
		}
	}

	return NewCoxeterMatrix(rows)
}

// byteSource is the read side of the keyed PRNG.
type byteSource interface {
	Read(p []byte) (int, error)
}

// drawIndex returns a uniform index in [0, n), 1 <= n <= maxOrders, reading
// one byte at a time and rejecting bytes >= 256 - 256%n.
func drawIndex(src byteSource, n int) (int, error) {
	limit := 256 - 256%n
	buf := make([]byte, 1)
	for {
		if _, err := src.Read(buf); err != nil {
			return 0, err
		}
		if b := int(buf[0]); b < limit {
			return b % n, nil
		}
	}
}
