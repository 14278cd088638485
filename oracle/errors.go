// SPDX-License-Identifier: MIT

package oracle

import "errors"

// ErrNoParties is returned when an oracle is asked to optimize over an
// inflation with zero parties.
var ErrNoParties = errors.New("oracle: inflation has no parties")

// ErrBadThreadCount is returned when a TreeSearch is configured with a
// non-positive thread count.
var ErrBadThreadCount = errors.New("oracle: thread count must be positive")
