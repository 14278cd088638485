// SPDX-License-Identifier: MIT

// Package distributions builds concrete TargetDistr instances for the
// noisy Shared Random Bit (SRB) and Elegant Joint Measurement (EJM)
// families over the triangle network, used to exercise the inflation,
// constraint, Frank-Wolfe, oracle and feasibility packages end to end
// (spec.md §5).
package distributions
