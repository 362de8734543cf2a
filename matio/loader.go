// SPDX-License-Identifier: MIT

package matio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gridcalc/matrix"
)

// LoadPair reads a size N and two N×N integer matrices from r.
//
// Implementation:
//   - Stage 1: scan the size token; reject unparsable or non-positive N.
//   - Stage 2: scan N·N elements for A, then N·N for B, row-major; the first
//     bad or missing token aborts with the matrix label and [i][j] position.
//
// Errors:
//   - ErrBadSize, ErrBadElement (wrapped with position context).
//
// Complexity: O(N²) time and memory.
func LoadPair(r io.Reader) (a, b *matrix.Dense, err error) {
	br := bufio.NewReader(r) // buffer token scanning over the raw reader

	// Read the size N.
	var n int
	if _, err = fmt.Fscan(br, &n); err != nil {
		return nil, nil, fmt.Errorf("read size: %v: %w", err, ErrBadSize)
	}
	if n <= 0 {
		return nil, nil, fmt.Errorf("size %d: %w", n, ErrBadSize)
	}

	// Read matrix A, then matrix B.
	if a, err = readBlock(br, "A", n); err != nil {
		return nil, nil, err
	}
	if b, err = readBlock(br, "B", n); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// LoadPairFile opens path, loads the pair, and closes the file on both the
// success and failure paths.
func LoadPairFile(path string) (*matrix.Dense, *matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("matio: open %s: %w", path, err)
	}
	defer f.Close() // release the handle before any matrix operation runs

	a, b, err := LoadPair(f)
	if err != nil {
		return nil, nil, fmt.Errorf("matio: load %s: %w", path, err)
	}

	return a, b, nil
}

// readBlock scans n·n whitespace-separated integers into a fresh n×n Dense.
// The label tells diagnostics which matrix the failing element belongs to.
func readBlock(r io.Reader, label string, n int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err // unreachable for n > 0; kept for the error chain
	}

	var v int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if _, err = fmt.Fscan(r, &v); err != nil {
				return nil, fmt.Errorf("matrix %s element [%d][%d]: %v: %w", label, i, j, err, ErrBadElement)
			}
			_ = m.Set(i, j, v) // bounds are loop-controlled; Set cannot fail
		}
	}

	return m, nil
}
