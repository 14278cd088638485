// SPDX-License-Identifier: MIT

package feas

import "github.com/lvlath-research/triangle-inflation/oracle"

// Outcome is the feasibility driver's verdict (spec.md §4.13).
type Outcome int

const (
	// Inconclusive means the Frank-Wolfe engine could not separate the
	// origin from the stored vertices' convex hull.
	Inconclusive Outcome = iota
	// Nonlocal means the current dual vector is a certificate: the
	// oracle found no inflation event with non-positive score.
	Nonlocal
)

// Result is what a feasibility run returns.
type Result struct {
	Outcome     Outcome
	Iterations  int
	Certificate oracle.Solution // valid (positive-score witness) iff Outcome == Nonlocal
}
