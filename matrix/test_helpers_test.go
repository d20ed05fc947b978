// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep fixtures explicit (row literals) so expected values can be checked by hand.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/Bal7hazar/nalgebra/matrix"
	"github.com/stretchr/testify/require"
)

// MustNew ALLOCATES an r×c zero matrix or fails the test.
func MustNew[T matrix.Integer](t testing.TB, r, c int, opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New[T](r, c, opts...)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a matrix from row literals or fails the test.
//
// AI-Hints:
//   - Use with CompareExact for hand-checked vectors.
func MustRows[T matrix.Integer](t testing.TB, rows [][]T, opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// MustSet WRITES m[i,j] = v or fails the test.
func MustSet[T matrix.Integer](t testing.TB, m *matrix.Matrix[T], i, j int, v T) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt[T matrix.Integer](t testing.TB, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS shape and strict cell equality against a 2D literal.
// Fails with the exact mismatch location.
func CompareExact[T matrix.Integer](t testing.TB, want [][]T, m *matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "Rows")
	var i, j int
	for i = 0; i < len(want); i++ {
		require.Equal(t, len(want[i]), m.Cols(), "Cols of row %d", i)
		for j = 0; j < len(want[i]); j++ {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// RandomRows RETURNS an r×c row literal with values in [-span, span].
// Deterministic for a fixed seed.
func RandomRows(r, c int, span int64, seed int64) [][]int64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]int64, r)
	for i := range out {
		out[i] = make([]int64, c)
		for j := range out[i] {
			out[i][j] = rng.Int63n(2*span+1) - span
		}
	}

	return out
}

// storages lists the backend options every behavioural test runs against.
var storages = []struct {
	name string
	opt  matrix.Option
}{
	{"flat", matrix.WithFlatStorage()},
	{"sparse", matrix.WithSparseStorage()},
}
