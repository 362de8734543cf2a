// SPDX-License-Identifier: MIT

package matio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gridcalc/matrix"
)

// DefaultFieldWidth is the fixed width each element is right-aligned into.
const DefaultFieldWidth = 6

// EmptyPlaceholder is printed instead of a grid for an empty matrix.
const EmptyPlaceholder = "[Empty Matrix]"

// PrintOptions contains tunable parameters for matrix printing.
type PrintOptions struct {
	// FieldWidth is the fixed column width for right-aligned elements.
	FieldWidth int
}

// DefaultPrintOptions returns PrintOptions with FieldWidth=6.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{FieldWidth: DefaultFieldWidth}
}

// Fprint writes m to w as right-aligned fixed-width rows followed by a blank
// line, using the default field width. An empty or nil matrix prints the
// placeholder line instead of a grid.
// Complexity: O(r*c).
func Fprint(w io.Writer, m matrix.Matrix) error {
	return FprintWith(w, m, DefaultPrintOptions())
}

// FprintLabeled writes a label line, then the matrix grid. Mirrors the
// console contract used by the CLI: label, grid, blank line.
func FprintLabeled(w io.Writer, label string, m matrix.Matrix) error {
	if _, err := fmt.Fprintln(w, label); err != nil {
		return fmt.Errorf("matio: print label: %w", err)
	}

	return Fprint(w, m)
}

// FprintWith writes m to w with explicit options.
// A non-positive FieldWidth falls back to the default rather than erroring;
// width is presentation, not data, and must never fail a run.
func FprintWith(w io.Writer, m matrix.Matrix, opts PrintOptions) error {
	width := opts.FieldWidth
	if width <= 0 {
		width = DefaultFieldWidth
	}

	// Empty matrices have no grid to print.
	if m == nil || m.Rows() == 0 || m.Cols() == 0 {
		if _, err := fmt.Fprintln(w, EmptyPlaceholder); err != nil {
			return fmt.Errorf("matio: print placeholder: %w", err)
		}

		return nil
	}

	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j) // bounds are loop-controlled; err guards foreign implementations
			if err != nil {
				return fmt.Errorf("matio: print element [%d][%d]: %w", i, j, err)
			}
			if _, err = fmt.Fprintf(w, "%*d", width, v); err != nil {
				return fmt.Errorf("matio: print element [%d][%d]: %w", i, j, err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("matio: print row %d: %w", i, err)
		}
	}

	// Blank line terminates the matrix block.
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("matio: print trailer: %w", err)
	}

	return nil
}
