// SPDX-License-Identifier: MIT

package matio

import "errors"

// Sentinel errors for matio operations. Loader failures are fatal to the
// run by contract: the caller receives no matrices at all.
var (
	// ErrBadSize indicates the size token N is missing, unparsable, or ≤ 0.
	ErrBadSize = errors.New("matio: invalid or missing matrix size")
	// ErrBadElement indicates an element token failed to parse or the stream
	// ended early; the wrapped context names the matrix and [row][col].
	ErrBadElement = errors.New("matio: failed to read matrix element")
)
