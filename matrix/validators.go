// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/nil/order checks.
//  - Keep kernels minimal by delegating precondition checks here.
//  - Return sentinels tagged with the validator name; kernels add their op tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Order).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T Integer](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape[T Integer](a, b *Matrix[T]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrInvalidDimension)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrInvalidDimension)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
func ValidateSquare[T Integer](m *Matrix[T]) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrInvalidDimension)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func ValidateMulCompatible[T Integer](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrInvalidDimension)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape[T Integer](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateCofactorInput – Composite: NotNil → Square → non-empty → order ≤ MaxOrder.
// Gate for every cofactor-expansion routine (Det, Cofactor, Adjugate, Inverse).
func ValidateCofactorInput[T Integer](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateCofactorInput", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateCofactorInput", err)
	}
	if m.r == 0 {
		return validatorErrorf("ValidateCofactorInput: empty", ErrInvalidDimension)
	}
	if m.r > m.opts.maxOrder {
		return validatorErrorf(
			fmt.Sprintf("ValidateCofactorInput: order %d > %d", m.r, m.opts.maxOrder),
			ErrOrderTooLarge,
		)
	}

	return nil
}
