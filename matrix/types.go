// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the element constraint and the configuration enums.
// The Matrix type itself lives in impl_matrix.go, storage backends in
// storage.go, options in options.go.
package matrix

import "golang.org/x/exp/constraints"

// Integer is the element constraint: any signed fixed-width integer
// (int, int8, int16, int32, int64 and their named derivatives).
// Arithmetic on these types is exact; the only failure mode is overflow,
// governed by OverflowPolicy.
type Integer interface {
	constraints.Signed
}

// StorageKind selects the cell storage backend of a Matrix.
type StorageKind int

const (
	// StorageFlat keeps every cell in a contiguous row-major []T (len == rows*cols).
	StorageFlat StorageKind = iota

	// StorageSparse keeps only non-zero cells in an insertion-ordered map keyed
	// by linear index; absent keys read as zero.
	StorageSparse
)

// String returns a short name for logs and error messages.
func (k StorageKind) String() string {
	switch k {
	case StorageFlat:
		return "flat"
	case StorageSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// OverflowPolicy selects how arithmetic reacts when a result leaves the range of T.
type OverflowPolicy int

const (
	// OverflowCheck fails the operation with ErrOverflow.
	OverflowCheck OverflowPolicy = iota

	// OverflowWrap accepts Go's two's-complement wraparound silently.
	OverflowWrap
)

// String returns a short name for logs and error messages.
func (p OverflowPolicy) String() string {
	switch p {
	case OverflowCheck:
		return "check"
	case OverflowWrap:
		return "wrap"
	default:
		return "unknown"
	}
}
