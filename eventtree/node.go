// SPDX-License-Identifier: MIT

package eventtree

import (
	"strconv"
	"strings"

	"github.com/lvlath-research/triangle-inflation/event"
)

// Node is one compressed-tree node: an outcome value and the indices of its
// children in the next depth's node array. Leaf nodes (at the last depth)
// have no children.
type Node struct {
	Outcome  event.Outcome
	Children []int32
}

func nodeKey(outcome event.Outcome, children []int32) string {
	var b strings.Builder
	b.WriteByte(byte(outcome))
	b.WriteByte('|')
	for i, c := range children {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(c)))
	}
	return b.String()
}
