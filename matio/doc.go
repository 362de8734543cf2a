// SPDX-License-Identifier: MIT

// Package matio loads and prints matrix pairs in the whitespace text format.
//
// Input format:
//
//	N
//	<N·N integers, row-major>   matrix A
//	<N·N integers, row-major>   matrix B
//
// Whitespace (including newlines) between tokens is insignificant. N must be
// a positive integer and exactly N·N integers must follow for each matrix;
// any violation aborts the load with an error naming the matrix and the
// element position, so nothing downstream ever sees a partial pair.
//
// Output format: each matrix prints as right-aligned fixed-width fields, one
// row per line, followed by a blank line; an empty matrix prints a literal
// placeholder instead of a grid.
package matio
