// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/coxeter/polynomial"
)

// Field is the m-th cyclotomic ring Z[x]/Φ_m(x).
// The zero value is an invalid field; construct with New.
type Field struct {
	d *desc
}

type desc struct {
	m      int
	base   polynomial.Int
	degree int
	digest [32]byte
}

var fields = struct {
	mu  sync.RWMutex
	byM map[int]Field
}{byM: make(map[int]Field)}

// New returns the m-th cyclotomic field. Fields are interned by index, so
// repeated calls return values sharing one descriptor.
//
// Errors:
//   - polynomial.ErrInvalidIndex if m <= 0 or m > polynomial.MaxCyclotomicIndex.
func New(m int) (Field, error) {
	fields.mu.RLock()
	f, ok := fields.byM[m]
	fields.mu.RUnlock()
	if ok {
		return f, nil
	}

	base, err := polynomial.Cyclotomic(m)
	if err != nil {
		return Field{}, fmt.Errorf("field.New: %w", err)
	}
	f = Field{d: &desc{m: m, base: base, degree: base.Degree(), digest: base.Digest()}}

	fields.mu.Lock()
	if cached, ok := fields.byM[m]; ok {
		f = cached
	} else {
		fields.byM[m] = f
	}
	fields.mu.Unlock()

	return f, nil
}

// MustNew is New for indices known to be valid; it panics otherwise.
func MustNew(m int) Field {
	f, err := New(m)
	if err != nil {
		panic(err)
	}

	return f
}

// IsZero reports whether f is the zero-value (uninitialised) Field.
func (f Field) IsZero() bool { return f.d == nil }

// Index returns m.
func (f Field) Index() int {
	if f.d == nil {
		return 0
	}

	return f.d.m
}

// Polynomial returns the defining polynomial Φ_m.
func (f Field) Polynomial() polynomial.Int {
	if f.d == nil {
		return polynomial.Int{}
	}

	return f.d.base
}

// Degree returns φ(m), the dimension of the power basis.
func (f Field) Degree() int {
	if f.d == nil {
		return 0
	}

	return f.d.degree
}

// Digest returns the SHA3-256 fingerprint of the defining polynomial.
func (f Field) Digest() [32]byte {
	if f.d == nil {
		return [32]byte{}
	}

	return f.d.digest
}

// Equal reports structural equality: same index and same defining polynomial.
func (f Field) Equal(g Field) bool {
	if f.d == g.d {
		return true
	}
	if f.d == nil || g.d == nil {
		return false
	}

	return f.d.m == g.d.m && f.d.digest == g.d.digest && f.d.base.Equal(g.d.base)
}

// Contains reports whether the k-th cyclotomic field embeds into f,
// i.e. whether k divides m.
func (f Field) Contains(k int) bool {
	return f.d != nil && k > 0 && f.d.m%k == 0
}

// String implements fmt.Stringer.
func (f Field) String() string {
	if f.d == nil {
		return "Q(ζ_?)"
	}

	return fmt.Sprintf("Q(ζ_%d)", f.d.m)
}
