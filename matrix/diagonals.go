// SPDX-License-Identifier: MIT

package matrix

// DiagonalSums computes the sums of the main and secondary diagonals of a
// square matrix: main = Σ m[i][i], secondary = Σ m[i][n-1-i].
//
// Implementation:
//   - Stage 1: ValidateSquareNonEmpty(m) — nil, empty, or non-square input
//     is a soft failure: both sums are zero and no computation happens.
//   - Stage 2: single deterministic i-loop reading both diagonals.
//
// Numeric policy:
//   - Both sums accumulate in int64 regardless of element width, since n can
//     be large relative to element magnitude.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrNonSquare (soft class — the caller may
//     report and continue; m is never mutated).
//
// Complexity:
//   - Time O(n), Space O(1).
func DiagonalSums(m Matrix) (mainSum, secondarySum int64, err error) {
	// Soft validation: report, compute nothing.
	if err = ValidateSquareNonEmpty(m); err != nil {
		return 0, 0, matrixErrorf("DiagonalSums", err)
	}

	n := m.Rows() // n == m.Cols() after ValidateSquareNonEmpty

	// Fast-path: read both diagonals off the flat backing slice.
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			mainSum += int64(dm.data[i*n+i])            // m[i][i]
			secondarySum += int64(dm.data[i*n+(n-1-i)]) // m[i][n-1-i]
		}

		return mainSum, secondarySum, nil
	}

	// Generic fallback; At errors cannot occur inside validated bounds.
	var v int
	for i := 0; i < n; i++ {
		v, _ = m.At(i, i)
		mainSum += int64(v)
		v, _ = m.At(i, n-1-i)
		secondarySum += int64(v)
	}

	return mainSum, secondarySum, nil
}
