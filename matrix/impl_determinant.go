// SPDX-License-Identifier: MIT

// Package matrix - determinant by cofactor (Laplace) expansion.
//
// Algorithm:
//   - n = 1: the single cell.
//   - n = 2: closed form a00*a11 - a01*a10.
//   - n ≥ 3: det = Σ_col sign(col) * a[0,col] * det(minor(0,col)),
//     sign = +1 for even col, -1 for odd col.
//
// Exact integer arithmetic, no division, no pivoting. Cost is O(n!), so the
// order is bounded by Options.MaxOrder (DefaultMaxOrder = 10).
// Zero entries of row 0 contribute nothing and skip their whole subtree.
package matrix

// Det returns the determinant of a square matrix.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidDimension for non-square or 0×0 input.
//   - ErrOrderTooLarge when n exceeds the configured max order.
//   - ErrOverflow when a product or sum leaves the range of T (checked policy).
//
// Complexity: Time O(n!), Space O(n^2) per recursion level.
func (m *Matrix[T]) Det() (T, error) {
	if err := ValidateCofactorInput(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := m.det(arithFor[T](m.opts))
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return d, nil
}

// det is the recursive kernel. m is square with n ≥ 1.
func (m *Matrix[T]) det(ar arith[T]) (T, error) {
	switch m.r {
	case 1:
		return m.at(0, 0), nil
	case 2:
		ad, err := ar.mul(m.at(0, 0), m.at(1, 1))
		if err != nil {
			return 0, err
		}
		bc, err := ar.mul(m.at(0, 1), m.at(1, 0))
		if err != nil {
			return 0, err
		}

		return ar.sub(ad, bc)
	}

	var (
		sum, a, sub, term T
		err               error
	)
	for col := 0; col < m.c; col++ {
		if a = m.at(0, col); a == 0 {
			continue
		}
		if sub, err = m.minor(0, col).det(ar); err != nil {
			return 0, err
		}
		if term, err = ar.mul(a, sub); err != nil {
			return 0, err
		}
		// Subtracting instead of negating keeps MinInt terms representable.
		if col%2 == 0 {
			sum, err = ar.add(sum, term)
		} else {
			sum, err = ar.sub(sum, term)
		}
		if err != nil {
			return 0, err
		}
	}

	return sum, nil
}
