// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/coxeter/numtheory"
)

// MaxCyclotomicIndex bounds the index accepted by Cyclotomic. Building Φ_m
// materialises x^m − 1, so larger indices are refused up front.
const MaxCyclotomicIndex = 1 << 16

// cyclotomicCache memoises Φ_m by index. Values are immutable, so readers
// share them without copying.
var cyclotomicCache = struct {
	mu    sync.RWMutex
	byIdx map[int]Int
}{byIdx: map[int]Int{1: New(-1, 1)}}

// Cyclotomic returns Φ_m, the unique monic irreducible integer polynomial of
// degree φ(m) whose roots are the primitive m-th roots of unity.
//
// Implementation:
//   - Stage 1: cache lookup under a read lock.
//   - Stage 2: divide x^m − 1 by Φ_d for every proper divisor d of m.
//   - Stage 3: publish the result under the write lock (first writer wins).
//
// Errors:
//   - ErrInvalidIndex if m <= 0 or m > MaxCyclotomicIndex.
func Cyclotomic(m int) (Int, error) {
	if m <= 0 || m > MaxCyclotomicIndex {
		return Int{}, fmt.Errorf("Cyclotomic(%d): %w", m, ErrInvalidIndex)
	}

	cyclotomicCache.mu.RLock()
	p, ok := cyclotomicCache.byIdx[m]
	cyclotomicCache.mu.RUnlock()
	if ok {
		return p, nil
	}

	divs, err := numtheory.Divisors(m)
	if err != nil {
		return Int{}, fmt.Errorf("Cyclotomic(%d): %w", m, err)
	}
	acc := Monomial(1, m).Sub(One())
	for _, d := range divs[:len(divs)-1] {
		phi, err := Cyclotomic(d)
		if err != nil {
			return Int{}, err
		}
		q, r, err := acc.QuoRem(phi)
		if err != nil {
			return Int{}, fmt.Errorf("Cyclotomic(%d): %w", m, err)
		}
		if !r.IsZero() {
			return Int{}, fmt.Errorf("Cyclotomic(%d): by Φ_%d: %w", m, d, ErrInexactDivision)
		}
		acc = q
	}

	cyclotomicCache.mu.Lock()
	if cached, ok := cyclotomicCache.byIdx[m]; ok {
		acc = cached
	} else {
		cyclotomicCache.byIdx[m] = acc
	}
	cyclotomicCache.mu.Unlock()

	return acc, nil
}

// MustCyclotomic is Cyclotomic for indices known to be valid; it panics otherwise.
func MustCyclotomic(m int) Int {
	p, err := Cyclotomic(m)
	if err != nil {
		panic(err)
	}

	return p
}
