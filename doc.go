// Package coxeter is an exact-arithmetic toolkit for Coxeter groups: Cartan
// matrices and simple-reflection matrices with entries in cyclotomic rings,
// never in floating point.
//
// 🚀 What is inside?
//
//   - numtheory: gcd, lcm folds, Euler's totient, divisors
//   - polynomial: big-integer polynomials, cyclotomic polynomials Φ_m (cached)
//   - field: cyclotomic fields Q(ζ_m) and immutable algebraic integers
//   - matrix: immutable square matrices over one field, sealed Operand
//     (*Matrix | Vector), exact IsIdentity / IsSymmetric / Digest
//   - coxeter: Coxeter matrix validation, CartanMatrix, ReflectionMatrix,
//     words, relation checks, seeded random diagrams
//
// ✨ Why exact?
//
//   - Orders such as 5 and 7 give irrational inner products −2cos(π/m).
//   - Downstream geometry relies on r_k² = 1 and (r_i r_j)^m_ij = 1 holding
//     exactly; a float tolerance hides real bugs and invents fake ones.
//   - Everything is immutable, so results can be shared between goroutines.
//
// Quick example:
//
//	M := coxeter.MustCoxeterMatrix([][]int{{1, 3, 2}, {3, 1, 7}, {2, 7, 1}})
//	C, _ := coxeter.CartanMatrix(M)      // over Q(ζ_84), degree 24
//	R, _ := coxeter.ReflectionMatrix(C, 1)
//	sq, _ := R.Mul(R)                    // sq.IsIdentity() == true
//
// See examples/ for a runnable walkthrough.
package coxeter
