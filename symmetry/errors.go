// SPDX-License-Identifier: MIT
// Package symmetry: sentinel errors.

package symmetry

import "errors"

var (
	// ErrNotAPermutation indicates the provided image list is not a bijection
	// on {0,...,len-1}.
	ErrNotAPermutation = errors.New("symmetry: image list is not a permutation")

	// ErrLengthMismatch indicates two operands (e.g. a permutation and the
	// list it acts on) have incompatible lengths.
	ErrLengthMismatch = errors.New("symmetry: length mismatch")
)
