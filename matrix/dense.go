// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold a dim×dim grid of field.Element over ONE cyclotomic field.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Immutability: every constructor copies its input; no method mutates the receiver.
//
// Complexity quicksheet:
//   - New: O(n²) validation + copy; At: O(1); Row: O(n); String/Digest: O(n²·φ(m)).

package matrix

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/katalvlaran/coxeter/field"
)

// ---------- error context tags ----------

const (
	ctxNew = "New"
	ctxAt  = "At"
	ctxRow = "Row"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an immutable square matrix of algebraic integers.
//   - f is the shared base field of every entry.
//   - n is the dimension.
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Matrix struct {
	f    field.Field
	n    int
	data []field.Element
}

var _ fmt.Stringer = (*Matrix)(nil)

// New validates grid and returns a Matrix over f holding a copy of it.
//
// Implementation:
//   - Stage 1: reject an uninitialised field and an empty grid (ErrBadShape).
//   - Stage 2: every row must have exactly len(grid) entries (ErrNonSquare).
//   - Stage 3: every entry must be initialised (ErrInvalidElement) and belong to f
//     (ErrIncompatibleField).
//   - Stage 4: copy into flat row-major storage.
//
// Errors are wrapped with the offending coordinates; match with errors.Is.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(f field.Field, grid [][]field.Element) (*Matrix, error) {
	if f.IsZero() {
		return nil, fmt.Errorf("Matrix.%s: %w", ctxNew, field.ErrInvalidField)
	}
	n := len(grid)
	if n == 0 {
		return nil, fmt.Errorf("Matrix.%s: dim=0: %w", ctxNew, ErrBadShape)
	}
	data := make([]field.Element, 0, n*n)
	for i, row := range grid {
		if len(row) != n {
			return nil, fmt.Errorf("Matrix.%s: row %d has %d entries, want %d: %w",
				ctxNew, i, len(row), n, ErrNonSquare)
		}
		for j, e := range row {
			if !e.IsValid() {
				return nil, denseErrorf(ctxNew, i, j, ErrInvalidElement)
			}
			if !e.Field().Equal(f) {
				return nil, denseErrorf(ctxNew, i, j, ErrIncompatibleField)
			}
			data = append(data, e)
		}
	}

	return &Matrix{f: f, n: n, data: data}, nil
}

// NewFromInts lifts an integer grid into f. Useful for permutation and
// unimodular matrices whose entries are rational integers.
func NewFromInts(f field.Field, grid [][]int64) (*Matrix, error) {
	lifted := make([][]field.Element, len(grid))
	for i, row := range grid {
		lifted[i] = make([]field.Element, len(row))
		for j, v := range row {
			lifted[i][j] = f.Int(v)
		}
	}

	return New(f, lifted)
}

// Identity returns the n×n identity over f.
func Identity(f field.Field, n int) (*Matrix, error) {
	m, err := Zero(f, n)
	if err != nil {
		return nil, err
	}
	one := f.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Zero returns the n×n zero matrix over f.
func Zero(f field.Field, n int) (*Matrix, error) {
	if f.IsZero() {
		return nil, fmt.Errorf("Matrix.Zero: %w", field.ErrInvalidField)
	}
	if n <= 0 {
		return nil, fmt.Errorf("Matrix.Zero: dim=%d: %w", n, ErrBadShape)
	}

	return newSquare(f, n), nil
}

// newSquare allocates an n×n zero matrix without validation (internal use).
func newSquare(f field.Field, n int) *Matrix {
	data := make([]field.Element, n*n)
	zero := f.Zero()
	for i := range data {
		data[i] = zero
	}

	return &Matrix{f: f, n: n, data: data}
}

// Dim returns the dimension n of the n×n matrix.
func (m *Matrix) Dim() int { return m.n }

// Field returns the shared base field.
func (m *Matrix) Field() field.Field { return m.f }

// At returns the entry (i, j) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (field.Element, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return field.Element{}, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// at is the unchecked accessor used by kernels after validation.
func (m *Matrix) at(i, j int) field.Element { return m.data[i*m.n+j] }

// Row returns a copy of row i.
func (m *Matrix) Row(i int) (Vector, error) {
	if i < 0 || i >= m.n {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make(Vector, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) (Vector, error) {
	if j < 0 || j >= m.n {
		return nil, denseErrorf("Col", 0, j, ErrOutOfRange)
	}
	out := make(Vector, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = m.at(i, j)
	}

	return out, nil
}

// Grid returns a fresh [][]field.Element copy of the entries.
func (m *Matrix) Grid() [][]field.Element {
	out := make([][]field.Element, m.n)
	for i := range out {
		out[i] = make([]field.Element, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// String implements fmt.Stringer, one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.n; j++ {
			sb.WriteString(m.at(i, j).String())
			if j < m.n-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Digest returns a SHA3-256 fingerprint of the field, the dimension and
// every entry. Equal matrices have equal digests, so the digest can key
// exact-value deduplication tables.
func (m *Matrix) Digest() [32]byte {
	h := sha3.New256()
	fd := m.f.Digest()
	_, _ = h.Write(fd[:])
	var hdr [8]byte
	binary.BigEndian.PutUint64(hdr[:], uint64(m.n))
	_, _ = h.Write(hdr[:])
	for _, e := range m.data {
		e.Polynomial().WriteCanonical(h)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))

	return out
}
