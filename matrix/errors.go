// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these with fmt.Errorf("ctx: %w", ErrX)
// when index/range context is essential — callers still match via errors.Is.
//
// ERROR CLASSES (enforced in tests):
// hard (operation aborts, no result): ErrInvalidDimensions, ErrNilMatrix,
// ErrRagged, ErrDimensionMismatch.
// soft (operation skipped, state preserved): ErrEmptyMatrix, ErrNonSquare,
// ErrIndexOutOfBounds.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At/Set) and mutators MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	// This is the hard failure class: no partial result is produced.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrEmptyMatrix signals a mutator or reduction was asked to operate on a
	// matrix with zero rows or zero columns.
	ErrEmptyMatrix = errors.New("matrix: matrix is empty")

	// ErrRagged indicates that row-slice input has rows of unequal length.
	// Ragged input is rejected at construction so kernels never see it.
	ErrRagged = errors.New("matrix: rows must have equal length")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
