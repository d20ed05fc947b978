// Package nalgebra is a small, exact linear-algebra toolkit over signed
// fixed-width integers.
//
// What is inside?
//
//	matrix/   — Matrix[T] for any signed integer type: flat or sparse cell
//	            storage, At/Set with bounds checks, Transpose, Minor,
//	            cofactor-expansion Det, Cofactor, Adjugate, Inverse,
//	            Add, Sub, Mul, Scale and Trace.
//	examples/ — a runnable demo that encodes and decodes a message with a
//	            unimodular key matrix and its exact inverse.
//
// Guarantees:
//
//   - No floating point anywhere; division truncates toward zero.
//   - Overflow is reported as matrix.ErrOverflow unless a matrix opts into
//     wraparound with matrix.WithOverflowWrap.
//   - Every operation returns a fresh Matrix; inputs are never mutated.
//   - Errors are sentinels wrapped with an operation tag, so errors.Is works
//     through every layer.
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]int64{{1, 2}, {3, 4}})
//	d, _ := a.Det()       // -2
//	inv, _ := a.Inverse() // [[-2, 1], [1, 0]]
//
// Cofactor expansion is O(n!), so determinants and inverses are bounded by
// matrix.WithMaxOrder (matrix.DefaultMaxOrder = 10).
package nalgebra
