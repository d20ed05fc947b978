// SPDX-License-Identifier: MIT

// Package matrix - structural transforms: Transpose and Minor.
//
// Both walk the source by linear index k = 0..r*c-1 and decompose it into
// (k / c, k % c), the inverse of the row-major formula. Both allocate a new
// Matrix with its own dimensions; the source is only read.
package matrix

import "fmt"

// Transpose returns a new c×r matrix with res[col,row] = m[row,col].
// Options are inherited from m.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Transpose() (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := newWithOptions[T](m.c, m.r, m.opts) // dims flipped
	var k, row, col int
	var v T
	n := m.r * m.c
	for k = 0; k < n; k++ {
		row, col = k/m.c, k%m.c
		if v = m.store.get(k); v != 0 {
			res.put(col, row, v)
		}
	}

	return res, nil
}

// Minor returns the (r-1)×(c-1) submatrix obtained by deleting excludeRow and
// excludeCol. Cells below the deleted row move up by one, cells right of the
// deleted column move left by one.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidDimension when m has no rows or no columns.
//   - ErrOutOfRange when excludeRow/excludeCol lie outside m.
//
// Complexity: Time O(r*c), Space O((r-1)*(c-1)).
func (m *Matrix[T]) Minor(excludeRow, excludeCol int) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opMinor, fmt.Errorf("shape %dx%d: %w", m.r, m.c, ErrInvalidDimension))
	}
	if _, err := m.indexOf(excludeRow, excludeCol); err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("exclude (%d,%d): %w", excludeRow, excludeCol, err))
	}

	return m.minor(excludeRow, excludeCol), nil
}

// minor is the unchecked kernel behind Minor, used directly by the cofactor
// recursion where preconditions are already established.
func (m *Matrix[T]) minor(excludeRow, excludeCol int) *Matrix[T] {
	res := newWithOptions[T](m.r-1, m.c-1, m.opts)

	var k, row, col, dr, dc int
	var v T
	n := m.r * m.c
	for k = 0; k < n; k++ {
		row, col = k/m.c, k%m.c
		if row == excludeRow || col == excludeCol {
			continue
		}
		if v = m.store.get(k); v == 0 {
			continue // destination is already zero
		}
		dr, dc = 0, 0
		if row > excludeRow {
			dr = -1
		}
		if col > excludeCol {
			dc = -1
		}
		res.put(row+dr, col+dc, v)
	}

	return res
}
