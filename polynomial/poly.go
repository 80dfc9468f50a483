// SPDX-License-Identifier: MIT

package polynomial

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Int is an immutable polynomial over Z.
// c holds coefficients low→high; the last entry is never zero.
// The zero value is the zero polynomial.
type Int struct {
	c []*big.Int
}

// New builds a polynomial from int64 coefficients, lowest degree first.
func New(coeffs ...int64) Int {
	c := make([]*big.Int, len(coeffs))
	for i, v := range coeffs {
		c[i] = big.NewInt(v)
	}

	return fromOwned(c)
}

// NewBig builds a polynomial from big coefficients, lowest degree first.
// The inputs are copied; nil entries count as zero.
func NewBig(coeffs []*big.Int) Int {
	c := make([]*big.Int, len(coeffs))
	for i, v := range coeffs {
		c[i] = new(big.Int)
		if v != nil {
			c[i].Set(v)
		}
	}

	return fromOwned(c)
}

// Monomial returns c·x^d. A negative d yields the zero polynomial.
func Monomial(c int64, d int) Int {
	if d < 0 || c == 0 {
		return Int{}
	}
	coeffs := make([]int64, d+1)
	coeffs[d] = c

	return New(coeffs...)
}

// One returns the constant polynomial 1.
func One() Int { return New(1) }

// X returns the polynomial x.
func X() Int { return New(0, 1) }

// fromOwned takes ownership of c and trims trailing zeros.
func fromOwned(c []*big.Int) Int {
	n := len(c)
	for n > 0 && c[n-1].Sign() == 0 {
		n--
	}
	if n == 0 {
		return Int{}
	}

	return Int{c: c[:n]}
}

// Degree returns the degree; the zero polynomial has degree -1.
func (p Int) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Int) IsZero() bool { return len(p.c) == 0 }

// Coeff returns a copy of the coefficient of x^i (zero outside the support).
func (p Int) Coeff(i int) *big.Int {
	if i < 0 || i >= len(p.c) {
		return new(big.Int)
	}

	return new(big.Int).Set(p.c[i])
}

// Coeffs returns a copy of all coefficients, lowest degree first.
func (p Int) Coeffs() []*big.Int {
	out := make([]*big.Int, len(p.c))
	for i, v := range p.c {
		out[i] = new(big.Int).Set(v)
	}

	return out
}

// LeadingCoeff returns the leading coefficient (zero for the zero polynomial).
func (p Int) LeadingCoeff() *big.Int {
	return p.Coeff(p.Degree())
}

// IsMonic reports whether the leading coefficient is 1.
func (p Int) IsMonic() bool {
	return !p.IsZero() && p.c[len(p.c)-1].IsInt64() && p.c[len(p.c)-1].Int64() == 1
}

// Equal reports coefficient-wise equality.
func (p Int) Equal(q Int) bool {
	if len(p.c) != len(q.c) {
		return false
	}
	for i := range p.c {
		if p.c[i].Cmp(q.c[i]) != 0 {
			return false
		}
	}

	return true
}

// Add returns p + q.
func (p Int) Add(q Int) Int {
	n := max(len(p.c), len(q.c))
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		out[i] = new(big.Int)
		if i < len(p.c) {
			out[i].Add(out[i], p.c[i])
		}
		if i < len(q.c) {
			out[i].Add(out[i], q.c[i])
		}
	}

	return fromOwned(out)
}

// Sub returns p − q.
func (p Int) Sub(q Int) Int {
	return p.Add(q.Neg())
}

// Neg returns −p.
func (p Int) Neg() Int {
	out := make([]*big.Int, len(p.c))
	for i, v := range p.c {
		out[i] = new(big.Int).Neg(v)
	}

	return Int{c: out}
}

// Scale returns k·p.
func (p Int) Scale(k *big.Int) Int {
	out := make([]*big.Int, len(p.c))
	for i, v := range p.c {
		out[i] = new(big.Int).Mul(v, k)
	}

	return fromOwned(out)
}

// Mul returns p·q (schoolbook).
func (p Int) Mul(q Int) Int {
	if p.IsZero() || q.IsZero() {
		return Int{}
	}
	out := make([]*big.Int, len(p.c)+len(q.c)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	var t big.Int
	for i, a := range p.c {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q.c {
			out[i+j].Add(out[i+j], t.Mul(a, b))
		}
	}

	return fromOwned(out)
}

// QuoRem divides p by a monic divisor d, returning quotient and remainder
// with deg(rem) < deg(d).
//
// Errors:
//   - ErrZeroDivisor if d is zero.
//   - ErrNotMonic if d is not monic.
func (p Int) QuoRem(d Int) (Int, Int, error) {
	if d.IsZero() {
		return Int{}, Int{}, fmt.Errorf("QuoRem: %w", ErrZeroDivisor)
	}
	if !d.IsMonic() {
		return Int{}, Int{}, fmt.Errorf("QuoRem: divisor %s: %w", d, ErrNotMonic)
	}
	dd := d.Degree()
	if p.Degree() < dd {
		return Int{}, p, nil
	}

	rem := p.Coeffs()
	quo := make([]*big.Int, len(rem)-dd)
	for i := range quo {
		quo[i] = new(big.Int)
	}
	var t big.Int
	for i := len(rem) - 1; i >= dd; i-- {
		q := rem[i]
		if q.Sign() == 0 {
			continue
		}
		quo[i-dd].Set(q)
		k := new(big.Int).Set(q)
		for j := 0; j <= dd; j++ {
			rem[i-dd+j].Sub(rem[i-dd+j], t.Mul(k, d.c[j]))
		}
	}

	return fromOwned(quo), fromOwned(rem[:dd]), nil
}

// Rem returns p mod d for a monic divisor d.
func (p Int) Rem(d Int) (Int, error) {
	_, r, err := p.QuoRem(d)
	if err != nil {
		return Int{}, fmt.Errorf("Rem: %w", err)
	}

	return r, nil
}

// Eval evaluates p at the integer x (Horner).
func (p Int) Eval(x int64) *big.Int {
	acc := new(big.Int)
	bx := big.NewInt(x)
	for i := len(p.c) - 1; i >= 0; i-- {
		acc.Mul(acc, bx)
		acc.Add(acc, p.c[i])
	}

	return acc
}

// Digest returns the SHA3-256 fingerprint of the canonical coefficient
// encoding. Equal polynomials have equal digests.
func (p Int) Digest() [32]byte {
	h := sha3.New256()
	p.WriteCanonical(h)
	var out [32]byte
	copy(out[:], h.Sum(nil))

	return out
}

// WriteCanonical appends the canonical byte encoding of p to w: degree, then
// for each coefficient a sign byte, a length and the magnitude bytes.
func (p Int) WriteCanonical(w io.Writer) {
	var hdr [8]byte
	binary.BigEndian.PutUint64(hdr[:], uint64(len(p.c)))
	_, _ = w.Write(hdr[:])
	for _, v := range p.c {
		mag := v.Bytes()
		sign := byte(0)
		if v.Sign() < 0 {
			sign = 1
		}
		binary.BigEndian.PutUint64(hdr[:], uint64(len(mag)))
		_, _ = w.Write([]byte{sign})
		_, _ = w.Write(hdr[:])
		_, _ = w.Write(mag)
	}
}

// String renders p highest degree first, e.g. "x^2 - x + 1".
func (p Int) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	first := true
	for i := len(p.c) - 1; i >= 0; i-- {
		v := p.c[i]
		if v.Sign() == 0 {
			continue
		}
		abs := new(big.Int).Abs(v)
		switch {
		case first && v.Sign() < 0:
			sb.WriteString("-")
		case !first && v.Sign() < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false

		unit := abs.IsInt64() && abs.Int64() == 1
		if !unit || i == 0 {
			sb.WriteString(abs.String())
		}
		switch {
		case i == 1:
			sb.WriteString("x")
		case i > 1:
			fmt.Fprintf(&sb, "x^%d", i)
		}
	}

	return sb.String()
}
