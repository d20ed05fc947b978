// SPDX-License-Identifier: MIT

// Package matrix - Matrix type (row-major indexing over a pluggable store) & safe accessors.
//
// Purpose:
//   - Provide the explicit index formula row*cols + col over a default-zero store.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking
//     or silently touching cells outside the declared shape.
//   - Keep algorithmic determinism (fixed loop orders, ordered sparse traversal).
//
// AI-Hints:
//   - A freshly constructed Matrix is all zeros; populate only the non-zero cells.
//   - Every operation returns a new Matrix; inputs are never mutated.
//   - Options (storage, overflow policy, max order) travel with the matrix into results.
//
// Complexity quicksheet:
//   - New: O(r*c) flat / O(1) sparse; At/Set: O(1); Clone: O(r*c) flat / O(nnz) sparse.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// cellErrorf wraps an error with a uniform Matrix context and callsite indices,
// e.g. "Matrix.At(3,1): matrix: index out of range".
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a rows×cols matrix of signed integers.
//   - r,c hold dimensions (>= 0, fixed for the lifetime of the value).
//   - store maps linear index row*c+col to a value; unset cells read as zero.
//   - opts carries storage kind, overflow policy and max cofactor order.
//
// A Matrix owns its store exclusively. It is not safe for concurrent mutation;
// distinct matrices are fully independent.
type Matrix[T Integer] struct {
	r, c  int
	store storage[T]
	opts  Options
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int64])(nil)

// New creates a rows×cols zero matrix.
// Zero-sized shapes (0×n, n×0, 0×0) are legal; negative dimensions, or a
// cell count rows*cols that does not fit in int, return ErrInvalidDimension.
//
// Complexity: O(r*c) for flat storage, O(1) for sparse storage.
func New[T Integer](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimension)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return nil, fmt.Errorf("New(%d,%d): cell count overflows int: %w", rows, cols, ErrInvalidDimension)
	}

	return newWithOptions[T](rows, cols, gatherOptions(opts...)), nil
}

// newWithOptions allocates a result matrix sharing an already resolved policy.
// Callers guarantee rows, cols >= 0.
func newWithOptions[T Integer](rows, cols int, o Options) *Matrix[T] {
	return &Matrix[T]{
		r:     rows,
		c:     cols,
		store: newStorage[T](o.storage, rows*cols),
		opts:  o,
	}
}

// NewFromRows builds a matrix from row literals (row-major).
// All rows must have the same length, else ErrBadShape.
// An empty slice yields a 0×0 matrix.
//
// Complexity: O(r*c).
func NewFromRows[T Integer](rows [][]T, opts ...Option) (*Matrix[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m := newWithOptions[T](r, c, gatherOptions(opts...))

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cells, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			if rows[i][j] != 0 {
				m.store.set(i*c+j, rows[i][j])
			}
		}
	}

	return m, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Negative n returns ErrInvalidDimension.
//
// Complexity: O(n^2) zeroing (flat) + O(n) diagonal writes.
func NewIdentity[T Integer](n int, opts ...Option) (*Matrix[T], error) {
	m, err := New[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.store.set(i*n+i, 1)
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape and options as m.
func ZerosLike[T Integer](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return newWithOptions[T](m.r, m.c, m.opts), nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// Options returns the resolved configuration carried by m.
func (m *Matrix[T]) Options() Options { return m.opts }

// indexOf bounds-checks (row,col) and computes the row-major offset row*c + col.
// Returns a bare ErrOutOfRange; public methods wrap it with coordinates.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// at reads a cell the caller already knows to be in range.
func (m *Matrix[T]) at(row, col int) T { return m.store.get(row*m.c + col) }

// put writes a cell the caller already knows to be in range.
func (m *Matrix[T]) put(row, col int, v T) { m.store.set(row*m.c+col, v) }

// At returns the value at (row, col); cells never written read as zero.
// Indices outside the declared shape return ErrOutOfRange.
//
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, cellErrorf(ctxAt, row, col, err)
	}

	return m.store.get(off), nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
//
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return cellErrorf(ctxSet, row, col, err)
	}
	m.store.set(off, v)

	return nil
}

// Clone returns a deep copy with identical shape, cells and options.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{
		r:     m.r,
		c:     m.c,
		store: m.store.clone(),
		opts:  m.opts,
	}
}

// NonZero counts cells holding a non-zero value.
// O(1) for sparse storage, O(r*c) for flat storage.
func (m *Matrix[T]) NonZero() int { return m.store.nonZero() }

// Equal reports whether m and o have the same shape and the same cell values.
// Storage kind and options are not compared. Two nil matrices are equal.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	eq := true
	m.Do(func(i, j int, v T) bool {
		eq = v == o.at(i, j)
		return eq // stop at the first difference
	})

	return eq
}

// ToRows returns the cells as row literals (a fresh [][]T).
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
	}
	m.Do(func(i, j int, v T) bool {
		out[i][j] = v
		return true
	})

	return out
}

// String renders rows as lines with comma-separated values, e.g. "[1, 2]\n[3, 4]\n".
// Intended for debugging; not for hot paths.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%d", m.at(i, j))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each cell (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
//
// Complexity: O(r*c).
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.at(i, j)) {
				return
			}
		}
	}
}

// Apply replaces each cell with f(i,j,v) in place, in row-major order.
// The first error aborts the walk; cells written before it keep their new value.
// For all-or-nothing semantics, apply to a Clone and swap on success.
//
// Complexity: O(r*c).
func (m *Matrix[T]) Apply(f func(i, j int, v T) (T, error)) error {
	var i, j int
	var nv T
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if nv, err = f(i, j, m.at(i, j)); err != nil {
				return cellErrorf(ctxApply, i, j, err)
			}
			m.put(i, j, nv)
		}
	}

	return nil
}
