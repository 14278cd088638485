// SPDX-License-Identifier: MIT

// Package network describes the fixed triangle causal network (three
// parties A, B, C each observing n outcomes) and a target distribution over
// it, together with the symmetry subgroup that leaves the distribution's
// numerators invariant (spec.md §3).
package network
