// SPDX-License-Identifier: MIT
// Package event: sentinel errors.

package event

import "errors"

var (
	// ErrBadBase indicates a base (outcome alphabet size) outside (0,256]
	// (256 = 255 real outcomes plus the UNKNOWN sentinel).
	ErrBadBase = errors.New("event: base must be in (0,256]")

	// ErrBadLength indicates a negative or overflow-prone event length.
	ErrBadLength = errors.New("event: length out of range")

	// ErrOutcomeOutOfRange indicates an outcome value is not in [0, base).
	ErrOutcomeOutOfRange = errors.New("event: outcome out of range")

	// ErrDimensionMismatch indicates two tensors have incompatible shapes
	// for an operation (e.g. tensor product arity, base mismatch).
	ErrDimensionMismatch = errors.New("event: dimension mismatch")

	// ErrZeroDenominator indicates a tensor's denominator was set to zero.
	ErrZeroDenominator = errors.New("event: denominator must be positive")
)
