// SPDX-License-Identifier: MIT

// Package symmetry implements the permutation primitives shared by the rest
// of the triangle-inflation solver: party permutations (with a parity bit
// used to lift network symmetries to inflation symmetries), outcome
// permutations, and their pairing into a full Symmetry acting on events.
//
// Symmetries are immutable once constructed and are safe for concurrent
// read-only use, which matters since the parallel tree-search oracle clones
// evaluators that hold references to Group values across goroutines.
package symmetry
