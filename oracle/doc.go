// SPDX-License-Identifier: MIT

// Package oracle implements the linear-minimization oracle of spec.md
// §4.11: given a constraint set's current dual vector, find an inflation
// event minimizing the integer inner product with it.
//
// BruteForce loops over every inflation event directly. TreeSearch instead
// walks the precomputed compressed symmetric event tree (package
// eventtree), pruning subtrees via branch-and-bound once bound-aware
// evaluators report a value that can no longer beat the best score found
// so far, and splits the search across a worker pool keyed by root-level
// path prefixes.
package oracle
