// SPDX-License-Identifier: MIT

package eventtree

import (
	"encoding/binary"
	"io"
)

// formatVersion is the serialized tree format version (spec.md §4.4:
// "version header, per-depth vectors of (outcome, child-count, child
// indices)").
const formatVersion uint32 = 1

// Encode writes t to w in the cache format: a version header, the depth,
// then for each depth the node count followed by each node's (outcome,
// child-count, child indices).
func Encode(w io.Writer, t *Tree) error {
	if err := writeUint32(w, formatVersion); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(t.depth)); err != nil {
		return err
	}
	for d := 0; d < t.depth; d++ {
		level := t.levels[d]
		if err := writeUint32(w, uint32(len(level))); err != nil {
			return err
		}
		for _, n := range level {
			if _, err := w.Write([]byte{n.Outcome}); err != nil {
				return err
			}
			if _, err := w.Write([]byte{byte(len(n.Children))}); err != nil {
				return err
			}
			for _, c := range n.Children {
				if err := writeUint32(w, uint32(c)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Decode reads a tree previously written by Encode, failing with
// ErrBadNodeIndex if a child index does not reference a node at the next
// depth.
func Decode(r io.Reader) (*Tree, error) {
	version, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, ErrVersionMismatch
	}
	depth32, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	depth := int(depth32)

	t := &Tree{depth: depth, levels: make([][]Node, depth)}
	for d := 0; d < depth; d++ {
		count, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		level := make([]Node, count)
		for i := range level {
			var buf [2]byte
			if _, err := io.ReadFull(r, buf[:]); err != nil {
				return nil, ErrCorruptData
			}
			outcome := buf[0]
			childCount := int(buf[1])
			children := make([]int32, childCount)
			for c := range children {
				v, err := readUint32(r)
				if err != nil {
					return nil, ErrCorruptData
				}
				children[c] = int32(v)
			}
			level[i] = Node{Outcome: outcome, Children: children}
		}
		t.levels[d] = level
	}
	for d := 0; d < depth; d++ {
		for _, n := range t.levels[d] {
			for _, c := range n.Children {
				if d+1 >= depth || c < 0 || int(c) >= len(t.levels[d+1]) {
					return nil, ErrBadNodeIndex
				}
			}
		}
	}
	t.FinishInitialization()
	return t, nil
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, ErrCorruptData
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}
