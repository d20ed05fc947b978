// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// %w) and tests MUST check them via errors.Is. No operation panics on a
// user-triggered error condition; panics are reserved for nonsensical option
// values (programmer error), see options.go.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with an operation tag through
// matrixErrorf / validatorErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> order limit -> singular -> overflow.

var (
	// ErrInvalidDimension is returned when an operation's shape precondition is
	// violated: negative dimensions at construction, non-square input to
	// Det/Inverse/Cofactor, mismatched shapes for Add/Sub, incompatible inner
	// dimensions for Mul, or Minor on a matrix without rows or columns.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrNotInvertible is returned by Inverse when the determinant is zero.
	ErrNotInvertible = errors.New("matrix: matrix not invertible")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) and Minor MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrOverflow signals that an intermediate or final value left the range of
	// the element type while the checked overflow policy was active.
	ErrOverflow = errors.New("matrix: integer overflow")

	// ErrOrderTooLarge signals that a cofactor-expansion routine was asked to
	// work on a square matrix larger than the configured maximum order.
	ErrOrderTooLarge = errors.New("matrix: order exceeds cofactor expansion limit")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when row-literal input is ragged.
	ErrBadShape = errors.New("matrix: ragged rows")
)
