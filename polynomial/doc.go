// Package polynomial implements immutable polynomials with arbitrary-precision
// integer coefficients and the cyclotomic polynomials Φ_m.
//
// What & Why:
//
//	Exact algebra in cyclotomic rings needs two things from Z[x]: ring
//	arithmetic that never rounds, and exact reduction modulo a monic
//	polynomial. Int provides both on top of math/big. Every operation returns
//	a fresh value, so an Int may be shared freely between goroutines.
//
// Cyclotomic polynomials:
//
//	Cyclotomic(m) returns Φ_m, the minimal polynomial of a primitive m-th root
//	of unity, computed by exact division (x^m − 1) / Π_{d|m, d<m} Φ_d.
//	Results are memoised in a process-wide cache guarded by sync.RWMutex.
//
// Complexity:
//
//	Add/Sub: O(n). Mul: O(n·k). QuoRem by a degree-d monic divisor: O((n−d)·d).
//	Cyclotomic(m): O(τ(m)·m²) on first use, O(1) afterwards.
package polynomial
