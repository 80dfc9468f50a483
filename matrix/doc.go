// Package matrix offers exact square matrices over a cyclotomic ring.
//
// The matrix package provides:
//
//   - Matrix: an immutable dim×dim grid of field.Element whose entries all
//     share one field.Field, validated at construction (New).
//   - A sealed Operand variant (*Matrix | Vector) so Multiply selects the
//     matrix–matrix or matrix–vector product from the caller's static type.
//   - Exact predicates (IsIdentity, IsSymmetric, Equal) and a SHA3 Digest for
//     exact-value deduplication.
//
// Crossing fields is always an error (ErrIncompatibleField): Q(ζ_3) and Q(ζ_6)
// are equal as fields but carry different defining polynomials, and their
// coefficient vectors are not interchangeable.
//
// Matrices are immutable and safe for concurrent read-only use.
package matrix
