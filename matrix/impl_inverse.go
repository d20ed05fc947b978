// SPDX-License-Identifier: MIT

// Package matrix - cofactors, adjugate and adjugate-based integer inverse.
//
// Definitions:
//   - Cofactor C[i,j] = (-1)^(i+j) * det(minor(i,j)); for n = 1, C[0,0] = 1.
//   - Adjugate adj(A)[j,i] = C[i,j] (transpose of the cofactor matrix).
//   - Inverse  inv(A) = adj(A) / det(A), each cell divided with truncation toward zero.
//
// The result is exact only when det(A) divides every cofactor (e.g. det = ±1).
// Otherwise each cell is the truncated quotient, not a rational inverse.
//
// Orientation: the cofactor C[row,col] goes to [col,row]. Writing it untransposed
// to [row,col] also gives [[-2,1],[1,0]] for [[1,2],[3,4]], but only the
// transposed placement yields A·inv(A) = I for unimodular A.
package matrix

import "fmt"

// Cofactor returns (-1)^(row+col) * det(minor(row, col)).
//
// Errors: ErrNilMatrix, ErrInvalidDimension, ErrOrderTooLarge, ErrOutOfRange, ErrOverflow.
// Complexity: O((n-1)!).
func (m *Matrix[T]) Cofactor(row, col int) (T, error) {
	if err := ValidateCofactorInput(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if _, err := m.indexOf(row, col); err != nil {
		return 0, matrixErrorf(opCofactor, fmt.Errorf("(%d,%d): %w", row, col, err))
	}
	c, err := m.cofactor(row, col, arithFor[T](m.opts))
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return c, nil
}

// cofactor is the unchecked kernel; m is square, non-empty, (row,col) in range.
func (m *Matrix[T]) cofactor(row, col int, ar arith[T]) (T, error) {
	if m.r == 1 {
		return 1, nil // empty minor has determinant 1
	}
	d, err := m.minor(row, col).det(ar)
	if err != nil {
		return 0, err
	}
	if (row+col)%2 == 1 {
		return ar.neg(d)
	}

	return d, nil
}

// Adjugate returns the transposed cofactor matrix: adj[col,row] = C[row,col].
// A * Adjugate(A) == det(A) * I holds exactly (barring overflow).
//
// Complexity: O(n^2 * (n-1)!).
func (m *Matrix[T]) Adjugate() (*Matrix[T], error) {
	if err := ValidateCofactorInput(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := m.adjugate(arithFor[T](m.opts), 1)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// adjugate fills res[col,row] = C[row,col] / divisor. divisor is non-zero;
// Adjugate passes 1, Inverse passes det.
func (m *Matrix[T]) adjugate(ar arith[T], divisor T) (*Matrix[T], error) {
	n := m.r
	res := newWithOptions[T](n, n, m.opts)

	var row, col int
	var c, q T
	var err error
	for row = 0; row < n; row++ {
		for col = 0; col < n; col++ {
			if c, err = m.cofactor(row, col, ar); err != nil {
				return nil, fmt.Errorf("cofactor(%d,%d): %w", row, col, err)
			}
			if q, err = ar.div(c, divisor); err != nil {
				return nil, fmt.Errorf("cofactor(%d,%d) / %d: %w", row, col, divisor, err)
			}
			res.put(col, row, q) // transposed placement
		}
	}

	return res, nil
}

// Inverse returns adj(A)/det(A) with truncating integer division.
//
// Example: Inverse([[1,2],[3,4]]) = [[-2,1],[1,0]] (det = -2).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension (non-square or 0×0), ErrOrderTooLarge.
//   - ErrNotInvertible when det == 0.
//   - ErrOverflow under the checked policy.
//
// Complexity: O(n! + n^2 * (n-1)!).
func (m *Matrix[T]) Inverse() (*Matrix[T], error) {
	if err := ValidateCofactorInput(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	ar := arithFor[T](m.opts)
	d, err := m.det(ar)
	if err != nil {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det: %w", err))
	}
	if d == 0 {
		return nil, matrixErrorf(opInverse, ErrNotInvertible)
	}
	inv, err := m.adjugate(ar, d)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
