// Package matrix provides exact linear algebra over signed fixed-width integers.
//
// The matrix package provides:
//
//   - Matrix[T], a rows×cols matrix over any signed integer type, stored
//     row-major (linear index row*cols + col) in a flat slice or in a
//     default-zero sparse map (WithSparseStorage).
//   - Structural transforms: Transpose and Minor.
//   - Determinant by cofactor (Laplace) expansion, Cofactor, Adjugate and an
//     adjugate-based Inverse with truncating integer division.
//   - Arithmetic: Add, Sub, Mul, Scale, Trace.
//
// Every operation returns a new Matrix and leaves its inputs untouched.
// Arithmetic is overflow-checked by default (ErrOverflow); WithOverflowWrap
// selects two's-complement wraparound instead.
//
// Cofactor expansion costs O(n!), so Det/Inverse are meant for small matrices;
// the order is bounded by WithMaxOrder (DefaultMaxOrder = 10).
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]int64{{1, 2}, {3, 4}})
//	d, _ := a.Det()        // -2
//	inv, _ := a.Inverse()  // [[-2, 1], [1, 0]]
//	p, _ := matrix.Mul(a, inv)
//
// See the examples in this package for usage patterns.
package matrix
