// SPDX-License-Identifier: MIT

// Package frankwolfe implements the Frank-Wolfe engine of spec.md §4.12:
// given a growing set of stored inflation events and their normalized
// quovecs, repeatedly propose a direction separating the origin from their
// convex hull (unit-norm from FullyCorrective; Pairwise returns its current
// convex-combination point unnormalized).
//
// Pairwise is self-contained, following a lazified away-step Frank-Wolfe
// scheme. FullyCorrective instead re-solves a small convex program on every
// call via gonum/optimize, at the cost of a per-call numerical solve.
package frankwolfe
