// SPDX-License-Identifier: MIT
// Package matrix: in-place mutators.
//
// Purpose:
//   - SwapRows, SwapCols and SetElement mutate their target directly; callers
//     that must preserve the original are expected to Clone() first and
//     mutate the copy (explicit clone-then-mutate at the call site).
//   - Every failure here is soft: the returned sentinel names the offending
//     indices and the valid range, and the matrix is left bitwise unchanged.

package matrix

import "fmt"

// Mutator operation tags for uniform error wrapping.
const (
	opSwapRows   = "SwapRows"
	opSwapCols   = "SwapCols"
	opSetElement = "SetElement"
)

// SwapRows exchanges rows r1 and r2 of m in place.
//
// Implementation:
//   - Stage 1: soft validation — nil/empty matrix, then both row indices
//     checked together against [0, rows).
//   - Stage 2: r1 == r2 is a silent no-op; otherwise the two whole rows are
//     exchanged in a single pass.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrIndexOutOfBounds (soft; m unchanged).
//
// Complexity:
//   - O(c) element exchanges on the row-major storage.
func SwapRows(m Matrix, r1, r2 int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	// Both indices are validated together so the diagnostic names both.
	rows := m.Rows()
	if r1 < 0 || r1 >= rows || r2 < 0 || r2 >= rows {
		return matrixErrorf(opSwapRows,
			fmt.Errorf("rows (%d, %d) out of bounds, valid range 0 to %d: %w", r1, r2, rows-1, ErrIndexOutOfBounds))
	}
	// Swapping a row with itself is a valid no-op.
	if r1 == r2 {
		return nil
	}

	// Fast-path: exchange the two row blocks of the flat backing slice.
	if dm, ok := m.(*Dense); ok {
		cols := dm.c
		rowA := dm.data[r1*cols : (r1+1)*cols]
		rowB := dm.data[r2*cols : (r2+1)*cols]
		for j := 0; j < cols; j++ {
			rowA[j], rowB[j] = rowB[j], rowA[j]
		}

		return nil
	}

	// Generic fallback; At/Set errors cannot occur inside validated bounds.
	cols := m.Cols()
	for j := 0; j < cols; j++ {
		a, _ := m.At(r1, j)
		b, _ := m.At(r2, j)
		_ = m.Set(r1, j, b)
		_ = m.Set(r2, j, a)
	}

	return nil
}

// SwapCols exchanges columns c1 and c2 of m in place.
//
// Structurally more expensive than SwapRows: columns are not contiguous in
// the row-major representation, so every row is visited.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrIndexOutOfBounds (soft; m unchanged).
//
// Complexity:
//   - O(r) element exchanges.
func SwapCols(m Matrix, c1, c2 int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opSwapCols, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return matrixErrorf(opSwapCols, err)
	}
	cols := m.Cols()
	if c1 < 0 || c1 >= cols || c2 < 0 || c2 >= cols {
		return matrixErrorf(opSwapCols,
			fmt.Errorf("columns (%d, %d) out of bounds, valid range 0 to %d: %w", c1, c2, cols-1, ErrIndexOutOfBounds))
	}
	// Swapping a column with itself is a valid no-op.
	if c1 == c2 {
		return nil
	}

	rows := m.Rows()

	// Fast-path: stride through the flat backing slice row by row.
	if dm, ok := m.(*Dense); ok {
		var base int
		for i := 0; i < rows; i++ {
			base = i * cols
			dm.data[base+c1], dm.data[base+c2] = dm.data[base+c2], dm.data[base+c1]
		}

		return nil
	}

	// Generic fallback; At/Set errors cannot occur inside validated bounds.
	for i := 0; i < rows; i++ {
		a, _ := m.At(i, c1)
		b, _ := m.At(i, c2)
		_ = m.Set(i, c1, b)
		_ = m.Set(i, c2, a)
	}

	return nil
}

// SetElement assigns v at (row, col) in place.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrIndexOutOfBounds — the diagnostic
//     names the offending pair and both valid ranges (soft; m unchanged).
//
// Complexity:
//   - O(1).
func SetElement(m Matrix, row, col, v int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opSetElement, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return matrixErrorf(opSetElement, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return matrixErrorf(opSetElement,
			fmt.Errorf("index (%d, %d) out of bounds, valid row range 0 to %d, valid col range 0 to %d: %w",
				row, col, rows-1, cols-1, ErrIndexOutOfBounds))
	}

	// Bounds already validated; Set cannot fail here.
	return m.Set(row, col, v)
}
