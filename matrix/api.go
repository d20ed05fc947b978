// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Offer free-function forms of the methods for composition (e.g. in pipelines
//     that pass func(*Matrix[T]) (*Matrix[T], error) values around).
//
// Determinism & Policy:
//   - Facades never change loop orders or the numeric policy of the underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors ----------

// NewZeros returns a new zero matrix of size rows×cols.
// Thin alias of New with an intention-revealing name.
func NewZeros[T Integer](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return New[T](rows, cols, opts...)
}

// CloneMatrix returns a deep copy of m, or ErrNilMatrix.
func CloneMatrix[T Integer](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return m.Clone(), nil
}

// IdentityLike returns the identity of m's order with m's options.
// Errors: ErrNilMatrix, ErrInvalidDimension (non-square).
func IdentityLike[T Integer](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	id := newWithOptions[T](m.r, m.r, m.opts)
	for i := 0; i < m.r; i++ {
		id.put(i, i, 1)
	}

	return id, nil
}

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T Integer](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Integer](a, b *Matrix[T]) (*Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Integer](a, b *Matrix[T]) (*Matrix[T], error) { return Mul(a, b) }

// ScaleBy is an alias for Scale: k*m.
func ScaleBy[T Integer](m *Matrix[T], k T) (*Matrix[T], error) { return Scale(m, k) }

// ---------- Structural & cofactor aliases ----------

// T is the free-function form of (*Matrix).Transpose: returns mᵀ.
func T[E Integer](m *Matrix[E]) (*Matrix[E], error) { return m.Transpose() }

// MinorOf is the free-function form of (*Matrix).Minor.
func MinorOf[T Integer](m *Matrix[T], excludeRow, excludeCol int) (*Matrix[T], error) {
	return m.Minor(excludeRow, excludeCol)
}

// DetOf is the free-function form of (*Matrix).Det.
func DetOf[T Integer](m *Matrix[T]) (T, error) { return m.Det() }

// AdjugateOf is the free-function form of (*Matrix).Adjugate.
func AdjugateOf[T Integer](m *Matrix[T]) (*Matrix[T], error) { return m.Adjugate() }

// InverseOf is the free-function form of (*Matrix).Inverse.
func InverseOf[T Integer](m *Matrix[T]) (*Matrix[T], error) { return m.Inverse() }

// MatVecMul is an alias for MatVec: y = m·x.
func MatVecMul[T Integer](m *Matrix[T], x []T) ([]T, error) { return MatVec(m, x) }

// ---------- Convenience compositions ----------

// Symmetrize returns m + mᵀ (square input). Composition: Transpose → Add.
// Integer counterpart of the (m + mᵀ)/2 symmetrization, without the halving.
func Symmetrize[T Integer](m *Matrix[T]) (*Matrix[T], error) {
	mt, err := m.Transpose()
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := Add(m, mt) // fails on non-square: shapes differ
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return sum, nil
}

// IsUnimodular reports whether m is square with det(m) = ±1, i.e. whether
// Inverse(m) is exact over the integers.
func IsUnimodular[T Integer](m *Matrix[T]) (bool, error) {
	d, err := m.Det()
	if err != nil {
		return false, err
	}

	return d == 1 || d == -1, nil
}

// RowSums returns r where r[i] = Σ_j m[i,j]. Implementation: MatVec(m, ones(cols)).
func RowSums[T Integer](m *Matrix[T]) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	ones := make([]T, m.c)
	for j := range ones {
		ones[j] = 1
	}

	return MatVec(m, ones)
}

// ColSums returns c where c[j] = Σ_i m[i,j]. Implementation: Transpose then MatVec.
func ColSums[T Integer](m *Matrix[T]) ([]T, error) {
	mt, err := m.Transpose()
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	ones := make([]T, mt.c)
	for i := range ones {
		ones[i] = 1
	}

	return MatVec(mt, ones)
}
