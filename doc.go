// Package gridcalc is a small toolkit for integer square-matrix arithmetic:
// load two N×N matrices from a whitespace text file, add and multiply them,
// sum their diagonals, and apply in-place row/column swaps and single-element
// updates.
//
// Everything is organized under focused subpackages:
//
//	matrix/ — the engine: Matrix interface, Dense storage, arithmetic
//	          kernels, diagonal sums, and the in-place mutators
//	matio/  — the collaborators: text-format loader and fixed-width printer
//	cmd/    — the gridcalc command line tool driving the reference flow
//
// The engine returns sentinel errors matched via errors.Is and never panics
// on user input. Structural shape mismatches (addition, multiplication) are
// hard failures that abort an operation with no partial result; bounds and
// emptiness violations in mutators are soft — the matrix is left unchanged
// and the caller may report and continue.
package gridcalc
