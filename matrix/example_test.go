package matrix_test

import (
	"errors"
	"fmt"

	"github.com/Bal7hazar/nalgebra/matrix"
)

// ExampleMatrix_Det shows the cofactor-expansion determinant of a 3×3 matrix.
func ExampleMatrix_Det() {
	m, _ := matrix.NewFromRows([][]int64{
		{6, 1, 1},
		{4, -2, 5},
		{2, 8, 7},
	})
	d, err := m.Det()
	fmt.Println(d, err)

	// Output:
	// -306 <nil>
}

// ExampleMatrix_Inverse inverts a matrix with truncating integer division.
func ExampleMatrix_Inverse() {
	m, _ := matrix.NewFromRows([][]int64{{1, 2}, {3, 4}})
	inv, _ := m.Inverse()
	fmt.Print(inv)

	singular, _ := matrix.NewFromRows([][]int64{{2, 4}, {1, 2}})
	_, err := singular.Inverse()
	fmt.Println(errors.Is(err, matrix.ErrNotInvertible))

	// Output:
	// [-2, 1]
	// [1, 0]
	// true
}

// ExampleMul multiplies a 2×3 by a 3×2 matrix.
func ExampleMul() {
	a, _ := matrix.NewFromRows([][]int32{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewFromRows([][]int32{{7, 8}, {9, 10}, {11, 12}})
	p, _ := matrix.Mul(a, b)
	fmt.Print(p)

	_, err := matrix.Mul(a, a)
	fmt.Println(err)

	// Output:
	// [58, 64]
	// [139, 154]
	// Mul: ValidateMulCompatible: matrix: invalid dimension
}

// ExampleWithSparseStorage builds a large, mostly-zero matrix cheaply.
func ExampleWithSparseStorage() {
	m, _ := matrix.New[int64](1000, 1000, matrix.WithSparseStorage())
	_ = m.Set(0, 999, 5)
	_ = m.Set(999, 0, -5)
	mt, _ := m.Transpose()
	v, _ := mt.At(999, 0)
	fmt.Println(m.NonZero(), v)

	// Output:
	// 2 5
}

// ExampleWithOverflowWrap contrasts checked and wrapping arithmetic on int8.
func ExampleWithOverflowWrap() {
	checked, _ := matrix.NewFromRows([][]int8{{100}})
	_, err := matrix.Add(checked, checked)
	fmt.Println(err)

	wrapping, _ := matrix.NewFromRows([][]int8{{100}}, matrix.WithOverflowWrap())
	sum, _ := matrix.Add(wrapping, wrapping)
	fmt.Print(sum)

	// Output:
	// Add: cell (0,0): matrix: integer overflow
	// [-56]
}
