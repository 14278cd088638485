// SPDX-License-Identifier: MIT

package feas

import (
	"os"

	"github.com/lvlath-research/triangle-inflation/eventtree"
)

// writeSymtreeCache serializes tree to path, prefixed with a length-framed
// metadata string so a later load can check it against the inflation that
// produced it (spec.md §6's symmetric-event-tree cache file: "metadata the
// inflation's full metadata string").
func writeSymtreeCache(path, metadata string, tree *eventtree.Tree) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := writeBinString(f, metadata); err != nil {
		return err
	}
	return eventtree.Encode(f, tree)
}

// readSymtreeCache loads a tree previously written by writeSymtreeCache,
// failing with ErrSymtreeMetadataMismatch if its stored metadata doesn't
// match expectedMetadata.
func readSymtreeCache(path, expectedMetadata string) (*eventtree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	metadata, err := readBinString(f)
	if err != nil {
		return nil, err
	}
	if metadata != expectedMetadata {
		return nil, ErrSymtreeMetadataMismatch
	}
	return eventtree.Decode(f)
}
