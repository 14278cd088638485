// SPDX-License-Identifier: MIT
// Package network: sentinel errors.

package network

import "errors"

var (
	// ErrBadOutcomeCount indicates n is outside (0,255].
	ErrBadOutcomeCount = errors.New("network: outcome count must be in (0,255]")

	// ErrNotAProbabilityDistribution indicates the tensor passed to
	// NewTargetDistr does not sum to its denominator with non-negative
	// numerators.
	ErrNotAProbabilityDistribution = errors.New("network: tensor is not a probability distribution")

	// ErrBadMarginal indicates a marginal party list references an index
	// outside {0,1,2} or contains duplicates. NewTargetDistr also returns it
	// for a tensor that is not of arity 3 over the network's outcome base.
	ErrBadMarginal = errors.New("network: invalid marginal party list")
)
