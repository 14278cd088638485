// SPDX-License-Identifier: MIT

package symmetry

import "sort"

// Group is a set of Symmetry values, ordered lexicographically as described
// on Symmetry.Less. Groups are built with NewGroup/Insert and are treated as
// immutable once handed to the rest of the solver.
type Group struct {
	elems []Symmetry
}

// NewGroup builds a Group from a (possibly non-unique, unordered) slice of
// symmetries, deduplicating and sorting them.
func NewGroup(syms []Symmetry) *Group {
	g := &Group{}
	for _, s := range syms {
		g.Insert(s)
	}
	return g
}

// Insert adds s to the group if it is not already present (by Equal),
// keeping the backing slice sorted by Less.
func (g *Group) Insert(s Symmetry) {
	idx := sort.Search(len(g.elems), func(i int) bool { return !g.elems[i].Less(s) })
	if idx < len(g.elems) && g.elems[idx].Equal(s) {
		return
	}
	g.elems = append(g.elems, Symmetry{})
	copy(g.elems[idx+1:], g.elems[idx:])
	g.elems[idx] = s
}

// Len returns the number of distinct elements.
func (g *Group) Len() int { return len(g.elems) }

// Elements returns the sorted backing slice. Callers must not mutate it.
func (g *Group) Elements() []Symmetry { return g.elems }

// Contains reports whether s is a member of the group.
func (g *Group) Contains(s Symmetry) bool {
	idx := sort.Search(len(g.elems), func(i int) bool { return !g.elems[i].Less(s) })
	return idx < len(g.elems) && g.elems[idx].Equal(s)
}

// IsClosedUnderComposition reports whether, for every pair sigma, tau in the
// group, sigma∘tau is also a member. Used by tests verifying closure
// (spec.md §8 property 1); intended for small groups only (O(|G|^2)).
func (g *Group) IsClosedUnderComposition() bool {
	for _, s := range g.elems {
		for _, t := range g.elems {
			c, err := s.ComposeAfter(t)
			if err != nil || !g.Contains(c) {
				return false
			}
		}
	}
	return true
}
