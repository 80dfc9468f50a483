// Package field models the ring of integers of a cyclotomic field
// Q(ζ_m) and its elements.
//
// A Field is a small value keyed by its index m and defining polynomial Φ_m.
// Two fields are compatible only when both agree; every binary operation on
// Elements checks this and fails with ErrIncompatibleField otherwise.
//
// An Element is an immutable algebraic integer stored as its reduced
// coefficient vector over the power basis 1, ζ, …, ζ^(φ(m)−1). Building an
// element from an unreduced vector of powers of ζ_m (FromPowers) reduces it
// modulo Φ_m, so ζ_m^(m/k) represents a primitive k-th root of unity whenever
// k divides m.
//
// Memory grows with the field degree φ(m): each Element holds up to φ(m)
// arbitrary-precision coefficients.
package field
