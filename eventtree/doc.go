// SPDX-License-Identifier: MIT

// Package eventtree implements the compressed symmetric event tree: a
// depth-|parties| structure of deduplicated (outcome, children) nodes
// representing the canonical-representative inflation events under an
// inflation symmetry group, plus the pruned depth-first filler that builds
// it and the serialization format used to cache it to disk (spec.md §4.4,
// §4.5).
package eventtree
