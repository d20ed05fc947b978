// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over integer matrices:
// element-wise addition and subtraction, matrix multiplication, scalar
// scaling and trace. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches and overflow.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - Results inherit the left operand's Options (storage, overflow, max order).
//   - All kernels use central validators and wrap via matrixErrorf with an op tag.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opScale     = "Scale"
	opTrace     = "Trace"
	opTranspose = "Transpose"
	opMinor     = "Minor"
	opDet       = "Det"
	opCofactor  = "Cofactor"
	opAdjugate  = "Adjugate"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + b (subtract=false) or a - b (subtract=true).
// Internal helper for Add/Sub to share validation and allocation.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub[T Integer](a, b *Matrix[T], subtract bool, opTag string) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	ar := arithFor[T](a.opts)
	op := ar.add
	if subtract {
		op = ar.sub
	}
	res := newWithOptions[T](a.r, a.c, a.opts)

	var k int
	var v T
	var err error
	n := a.r * a.c
	for k = 0; k < n; k++ {
		if v, err = op(a.store.get(k), b.store.get(k)); err != nil {
			return nil, matrixErrorf(opTag, fmt.Errorf("cell (%d,%d): %w", k/a.c, k%a.c, err))
		}
		if v != 0 {
			res.store.set(k, v)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh matrix.
//
// Errors: ErrNilMatrix, ErrInvalidDimension (shape mismatch), ErrOverflow.
// Complexity: Time O(r*c), Space O(r*c).
func Add[T Integer](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh matrix.
//
// Errors: ErrNilMatrix, ErrInvalidDimension (shape mismatch), ErrOverflow.
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T Integer](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, true, opSub) }

// Mul performs standard matrix multiplication C = A × B, C[i,j] = Σ_k A[i,k]*B[k,j].
// Shape: (A.Rows × A.Cols) × (B.Rows × B.Cols) with A.Cols == B.Rows → A.Rows × B.Cols.
// Zero A[i,k] terms are skipped.
//
// Errors: ErrNilMatrix, ErrInvalidDimension (inner mismatch), ErrOverflow.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul[T Integer](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	ar := arithFor[T](a.opts)
	aRows, aCols, bCols := a.r, a.c, b.c
	res := newWithOptions[T](aRows, bCols, a.opts)

	var (
		i, j, k         int
		av, prod, accum T
		err             error
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			accum = 0
			for k = 0; k < aCols; k++ {
				if av = a.at(i, k); av == 0 {
					continue // skip zero for performance
				}
				if prod, err = ar.mul(av, b.at(k, j)); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("cell (%d,%d): %w", i, j, err))
				}
				if accum, err = ar.add(accum, prod); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("cell (%d,%d): %w", i, j, err))
				}
			}
			if accum != 0 {
				res.put(i, j, accum)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x where len(x) == m.Cols(); y has length m.Rows().
//
// Errors: ErrNilMatrix, ErrInvalidDimension (len(x) != cols), ErrOverflow.
// Complexity: Time O(r*c), Space O(r).
func MatVec[T Integer](m *Matrix[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMatVec, ErrInvalidDimension)
	}

	ar := arithFor[T](m.opts)
	y := make([]T, m.r)

	var (
		i, j        int
		prod, accum T
		err         error
	)
	for i = 0; i < m.r; i++ {
		accum = 0
		for j = 0; j < m.c; j++ {
			if x[j] == 0 {
				continue
			}
			if prod, err = ar.mul(m.at(i, j), x[j]); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("row %d: %w", i, err))
			}
			if accum, err = ar.add(accum, prod); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("row %d: %w", i, err))
			}
		}
		y[i] = accum
	}

	return y, nil
}

// Scale returns a new matrix with cells k*m[i,j].
//
// Errors: ErrNilMatrix, ErrOverflow.
// Complexity: Time O(r*c), Space O(r*c).
func Scale[T Integer](m *Matrix[T], k T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	ar := arithFor[T](m.opts)
	res := m.Clone()
	if err := res.Apply(func(_, _ int, v T) (T, error) { return ar.mul(k, v) }); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// Trace returns Σ_i m[i,i] of a square matrix (0 for 0×0).
//
// Errors: ErrNilMatrix, ErrInvalidDimension (non-square), ErrOverflow.
// Complexity: O(n).
func Trace[T Integer](m *Matrix[T]) (T, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	ar := arithFor[T](m.opts)

	var sum T
	var err error
	for i := 0; i < m.r; i++ {
		if sum, err = ar.add(sum, m.at(i, i)); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
	}

	return sum, nil
}
