// SPDX-License-Identifier: MIT

package eventtree

import "errors"

// ErrTooManyChildren is returned when a node would be inserted with more
// than 255 children, violating the tree's byte-width child-count invariant
// (spec.md's Non-goals: "no more than 255 children per tree node").
var ErrTooManyChildren = errors.New("eventtree: node exceeds 255 children")

// ErrDepthOutOfRange is returned when a tree operation names a depth outside
// [0, tree depth).
var ErrDepthOutOfRange = errors.New("eventtree: depth out of range")

// ErrBadNodeIndex is returned when a child index does not reference a valid
// node at the expected depth.
var ErrBadNodeIndex = errors.New("eventtree: node index out of range")

// ErrVersionMismatch is returned when decoding a serialized tree whose
// version header does not match the current format.
var ErrVersionMismatch = errors.New("eventtree: serialized version mismatch")

// ErrCorruptData is returned when decoding malformed or truncated
// serialized tree data.
var ErrCorruptData = errors.New("eventtree: corrupt serialized data")
