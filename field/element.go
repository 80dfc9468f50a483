// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/coxeter/polynomial"
)

// Element is an immutable algebraic integer in a cyclotomic Field.
// p is always reduced modulo the field polynomial, so two elements are equal
// iff their fields and coefficient vectors are equal.
// The zero value is invalid; obtain elements from a Field.
type Element struct {
	f Field
	p polynomial.Int
}

// ---------- constructors ----------

// Zero returns the additive identity of f.
func (f Field) Zero() Element { return Element{f: f} }

// One returns the multiplicative identity of f.
func (f Field) One() Element { return f.Int(1) }

// Int lifts the rational integer n into f.
func (f Field) Int(n int64) Element {
	return Element{f: f, p: polynomial.New(n)}
}

// BigInt lifts the rational integer n into f.
func (f Field) BigInt(n *big.Int) Element {
	return Element{f: f, p: polynomial.NewBig([]*big.Int{n})}
}

// FromPowers builds Σ z[p]·ζ_m^p from an unreduced vector of at most m
// coefficients and reduces it modulo Φ_m.
//
// Errors:
//   - ErrInvalidField for the zero-value Field.
//   - ErrBadCoefficients if len(z) > m.
func (f Field) FromPowers(z []int64) (Element, error) {
	if f.IsZero() {
		return Element{}, fmt.Errorf("FromPowers: %w", ErrInvalidField)
	}
	if len(z) > f.d.m {
		return Element{}, fmt.Errorf("FromPowers: len=%d > m=%d: %w", len(z), f.d.m, ErrBadCoefficients)
	}

	return f.reduce(polynomial.New(z...)), nil
}

// FromReduced builds an element from coefficients already expressed in the
// power basis 1, ζ, …, ζ^(φ(m)−1).
//
// Errors:
//   - ErrInvalidField for the zero-value Field.
//   - ErrBadCoefficients if len(c) > φ(m).
func (f Field) FromReduced(c []int64) (Element, error) {
	if f.IsZero() {
		return Element{}, fmt.Errorf("FromReduced: %w", ErrInvalidField)
	}
	if len(c) > f.d.degree {
		return Element{}, fmt.Errorf("FromReduced: len=%d > deg=%d: %w", len(c), f.d.degree, ErrBadCoefficients)
	}

	return Element{f: f, p: polynomial.New(c...)}, nil
}

// RootOfUnity returns ζ_m^k; k is taken modulo m, so negative powers are allowed.
func (f Field) RootOfUnity(k int) Element {
	if f.IsZero() {
		return Element{}
	}
	k %= f.d.m
	if k < 0 {
		k += f.d.m
	}

	return f.reduce(polynomial.Monomial(1, k))
}

// reduce maps p into the power basis. Φ_m is monic, so Rem cannot fail.
func (f Field) reduce(p polynomial.Int) Element {
	r, err := p.Rem(f.d.base)
	if err != nil {
		panic(fmt.Sprintf("field: reduce modulo %s: %v", f.d.base, err))
	}

	return Element{f: f, p: r}
}

// ---------- accessors ----------

// Field returns the field e belongs to.
func (e Element) Field() Field { return e.f }

// IsValid reports whether e was produced by a Field (not the zero value).
func (e Element) IsValid() bool { return !e.f.IsZero() }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e.p.IsZero() }

// IsInteger reports whether e is a rational integer (no ζ terms).
func (e Element) IsInteger() bool { return e.p.Degree() <= 0 }

// Integer returns the rational-integer projection of e, its constant
// coefficient. It is meaningful only when IsInteger is true.
func (e Element) Integer() *big.Int { return e.p.Coeff(0) }

// IsOne reports whether e equals the rational integer 1.
func (e Element) IsOne() bool {
	if !e.IsInteger() {
		return false
	}
	c := e.Integer()

	return c.IsInt64() && c.Int64() == 1
}

// Coeffs returns a copy of the reduced coefficient vector, lowest power first.
func (e Element) Coeffs() []*big.Int { return e.p.Coeffs() }

// Polynomial returns the reduced representative as a polynomial in ζ.
func (e Element) Polynomial() polynomial.Int { return e.p }

// Equal reports whether e and o are the same element of the same field.
func (e Element) Equal(o Element) bool {
	return e.f.Equal(o.f) && e.p.Equal(o.p)
}

// ---------- arithmetic ----------

func (e Element) check(op string, o Element) error {
	if !e.IsValid() || !o.IsValid() {
		return fmt.Errorf("Element.%s: %w", op, ErrInvalidElement)
	}
	if !e.f.Equal(o.f) {
		return fmt.Errorf("Element.%s: %s vs %s: %w", op, e.f, o.f, ErrIncompatibleField)
	}

	return nil
}

// Add returns e + o.
func (e Element) Add(o Element) (Element, error) {
	if err := e.check("Add", o); err != nil {
		return Element{}, err
	}

	return Element{f: e.f, p: e.p.Add(o.p)}, nil
}

// Sub returns e − o.
func (e Element) Sub(o Element) (Element, error) {
	if err := e.check("Sub", o); err != nil {
		return Element{}, err
	}

	return Element{f: e.f, p: e.p.Sub(o.p)}, nil
}

// Mul returns e·o reduced modulo Φ_m.
func (e Element) Mul(o Element) (Element, error) {
	if err := e.check("Mul", o); err != nil {
		return Element{}, err
	}

	return e.f.reduce(e.p.Mul(o.p)), nil
}

// Neg returns −e.
func (e Element) Neg() Element {
	return Element{f: e.f, p: e.p.Neg()}
}

// MustAdd is Add for operands already known to share a field.
func (e Element) MustAdd(o Element) Element { return must(e.Add(o)) }

// MustSub is Sub for operands already known to share a field.
func (e Element) MustSub(o Element) Element { return must(e.Sub(o)) }

// MustMul is Mul for operands already known to share a field.
func (e Element) MustMul(o Element) Element { return must(e.Mul(o)) }

func must(e Element, err error) Element {
	if err != nil {
		panic(err)
	}

	return e
}

// ---------- formatting ----------

// String renders e as a polynomial in ζ, e.g. "-ζ^3 + ζ - 1".
func (e Element) String() string {
	return strings.ReplaceAll(e.p.String(), "x", "ζ")
}

// Key returns a canonical string usable as a map key: field index followed by
// the reduced coefficients.
func (e Element) Key() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:", e.f.Index())
	for i, c := range e.p.Coeffs() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(c.String())
	}

	return sb.String()
}
