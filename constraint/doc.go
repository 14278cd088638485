// SPDX-License-Identifier: MIT

// Package constraint parses inflation constraint descriptions and builds
// the exact-integer machinery that evaluates them against an inflation
// event: marginal symmetrization, bound-aware dual vectors, single
// constraints, and the balanced-scale constraint set (spec.md §4.6-§4.10).
package constraint
