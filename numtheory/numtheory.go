// SPDX-License-Identifier: MIT

package numtheory

import (
	"fmt"
	"math"
	"sort"
)

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of two non-negative integers.
// LCM(x, 0) is 0 for every x.
//
// Errors:
//   - ErrNegative if a or b is negative.
//   - ErrOverflow if the result does not fit into int.
func LCM(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("LCM(%d,%d): %w", a, b, ErrNegative)
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	q := a / GCD(a, b)
	if q > math.MaxInt/b {
		return 0, fmt.Errorf("LCM(%d,%d): %w", a, b, ErrOverflow)
	}

	return q * b, nil
}

// LCMAll folds LCM over xs starting from 1. An empty argument list yields 1.
func LCMAll(xs ...int) (int, error) {
	acc := 1
	var err error
	for _, x := range xs {
		if acc, err = LCM(acc, x); err != nil {
			return 0, fmt.Errorf("LCMAll: %w", err)
		}
	}

	return acc, nil
}

// Totient returns Euler's φ(n), the number of 1 ≤ k ≤ n coprime to n.
// It equals the degree of the n-th cyclotomic polynomial.
func Totient(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("Totient(%d): %w", n, ErrNonPositive)
	}
	result := n
	for _, pe := range factorize(n) {
		result -= result / pe.p
	}

	return result, nil
}

// Divisors returns the positive divisors of n in ascending order.
func Divisors(n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Divisors(%d): %w", n, ErrNonPositive)
	}
	divs := []int{1}
	for _, pe := range factorize(n) {
		base := len(divs)
		q := 1
		for e := 0; e < pe.e; e++ {
			q *= pe.p // q divides n, no overflow
			for _, d := range divs[:base] {
				divs = append(divs, d*q)
			}
		}
	}
	sort.Ints(divs)

	return divs, nil
}

type primePower struct{ p, e int }

// factorize returns the prime factorisation of n > 0 by trial division.
// The bound p <= rest/p never overflows int.
func factorize(n int) []primePower {
	var out []primePower
	rest := n
	for p := 2; p <= rest/p; {
		if rest%p == 0 {
			pe := primePower{p: p}
			for rest%p == 0 {
				rest /= p
				pe.e++
			}
			out = append(out, pe)
		}
		if p == 2 {
			p = 3
		} else {
			p += 2
		}
	}
	if rest > 1 {
		out = append(out, primePower{p: rest, e: 1})
	}

	return out
}
