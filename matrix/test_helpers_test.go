// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels and mutators.
//   - Keep all data well-formed so shape policy never interferes with the
//     property under test.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gridcalc/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to mask its concrete type from type assertions.
// Use hide{X} in tests to force the generic (non-*Dense) fallback paths,
// then assert fast-path == fallback on the same inputs.
type hide struct{ matrix.Matrix }

// emptyMatrix is a stub Matrix reporting zero dimensions. Dense cannot be
// constructed empty, so the zero-shape guards are exercised through this.
type emptyMatrix struct{}

func (emptyMatrix) Rows() int { return 0 }
func (emptyMatrix) Cols() int { return 0 }
func (emptyMatrix) At(_, _ int) (int, error) { return 0, matrix.ErrIndexOutOfBounds }
func (emptyMatrix) Set(_, _ int, _ int) error { return matrix.ErrIndexOutOfBounds }
func (e emptyMatrix) Clone() matrix.Matrix { return e }

// MustDense allocates an r×c *Dense or fails the test immediately.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err) // allocation must succeed for the fixture
	return m
}

// MustFromRows builds a *Dense from row slices or fails the test immediately.
func MustFromRows(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err) // fixture rows are always rectangular
	return m
}

// MustAt reads (i, j) or fails the test immediately.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) int {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err) // reads stay inside fixture bounds
	return v
}

// RequireGrid asserts that m equals the expected row-slice literal cell by cell.
func RequireGrid(t *testing.T, m matrix.Matrix, want [][]int) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())    // height must match expectation
	require.Equal(t, len(want[0]), m.Cols()) // width must match expectation
	for i := range want {
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}
