// Package coxeter builds exact representation-theoretic data for Coxeter
// groups from a Coxeter matrix.
//
// What & Why:
//
//	A Coxeter matrix M records the order m_ij of r_i·r_j for every pair of
//	generating reflections (0 meaning infinite order). Its Cartan matrix
//	C[i][j] = −2cos(π/m_ij) encodes the bilinear form on simple roots; for
//	m_ij ∉ {2,3,4,6,∞} these values are irrational. This package keeps them
//	exact as algebraic integers of the smallest cyclotomic field that holds
//	them all, so relations such as r_k² = 1 and (r_i r_j)^m_ij = 1 can be
//	tested with equality instead of a tolerance.
//
// Pipeline:
//
//	NewCoxeterMatrix  → validated input
//	MinimalIndex      → m = lcm(2, 2·m_ij for finite m_ij)
//	CartanMatrix      → *matrix.Matrix over Q(ζ_m)
//	ReflectionMatrix  → *matrix.Matrix of r_k on the simple-root basis,
//	                    in the Cartan matrix's field
//
// Growth:
//
//	Every entry stores up to φ(m) coefficients, and m is the lcm of all
//	finite 2·m_ij. Diagrams mixing orders such as 5, 7 and 9 reach
//	m = 630 (φ = 144). Use WithMaxIndex to bound this explicitly.
//
// Every function is pure; results are immutable and safe to share between
// goroutines.
package coxeter
