// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/emptiness checks here.
//  - Return plain sentinel errors (tagged) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Emptiness cannot arise from NewDense/NewDenseFromRows, but foreign
//    Matrix implementations may report zero dimensions; validators guard
//    against that instead of trusting the constructor contract.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty ensures m has at least one row and one column.
// Assumes m is not nil (caller must ensure).
// Returns ErrEmptyMatrix on violation.
// Complexity: O(1).
func ValidateNonEmpty(m Matrix) error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmptyMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	// Execute comparisons
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Returns ErrNonSquare on violation.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateAddCompatible — Composite: NotNil(a) → NotNil(b) → NonEmpty(a) → SameShape.
// Shape incompatibility (including empty operands) is the hard failure class
// for addition, so emptiness surfaces as ErrDimensionMismatch here, not as
// the soft ErrEmptyMatrix used by mutators.
// Complexity: O(1).
func ValidateAddCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateAddCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateAddCompatible", err)
	}
	// Empty operands have no sensible element-wise sum.
	if a.Rows() == 0 || a.Cols() == 0 {
		return validatorErrorf("ValidateAddCompatible", ErrDimensionMismatch)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateAddCompatible", err)
	}

	return nil
}

// ValidateMulCompatible — Composite: NotNil(a) → NotNil(b) → NonEmpty → a.Cols == b.Rows.
// The zero-height/zero-width guards close the undefined-behavior hole a
// fully empty operand would open in the triple-loop kernel.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Rows() == 0 || a.Cols() == 0 || b.Rows() == 0 || b.Cols() == 0 {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonEmpty — Composite: NotNil → NonEmpty → Square.
// Used by DiagonalSums; all three violations belong to the soft class there.
// Complexity: O(1).
func ValidateSquareNonEmpty(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonEmpty", err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return validatorErrorf("ValidateSquareNonEmpty", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonEmpty", err)
	}

	return nil
}
