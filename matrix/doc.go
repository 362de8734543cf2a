// SPDX-License-Identifier: MIT

// Package matrix provides integer square-matrix kernels: element-wise
// addition and subtraction, standard multiplication, transpose, scalar
// scaling, diagonal sums, and the three in-place mutators (row swap,
// column swap, single-element update).
//
// What & Why:
//
//	All kernels operate on the Matrix interface and return sentinel errors
//	instead of panicking. Two error classes are kept strictly apart:
//	structural incompatibilities (ErrDimensionMismatch) abort an operation
//	with no partial result, while bounds/emptiness violations in mutators
//	and DiagonalSums are recoverable — the target matrix is left unchanged
//	and the caller may report and continue.
//
// Numeric policy:
//
//	Elements are int. Multiplication and diagonal sums accumulate in int64
//	to reduce overflow risk; stored elements remain int.
//
// Complexity:
//
//	Add/Sub/Transpose/Scale run in O(r*c); Mul in O(r*n*c); SwapRows in
//	O(c); SwapCols in O(r); SetElement in O(1); DiagonalSums in O(n).
package matrix
