// Package numtheory provides the small integer utilities the cyclotomic
// machinery is built on: greatest common divisor, least common multiple
// (binary and folded), Euler's totient and divisor enumeration.
//
// All functions are pure and deterministic. Overflow of the native int is
// reported as ErrOverflow instead of silently wrapping, because the lcm fold
// over a Coxeter matrix grows quickly with the number of distinct orders.
//
// Complexity:
//
//	GCD, LCM: O(log min(a,b)).
//	Totient, Divisors: O(√n).
package numtheory
