// SPDX-License-Identifier: MIT

package orbit

import (
	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/symmetry"
)

// Partition is the result of orbiting the event space of a fixed arity and
// outcome base under a symmetry group.
type Partition struct {
	K, Base int

	// indexOf maps an event hash to its orbit index.
	indexOf map[uint64]int

	// reps holds, for each orbit index, the canonical (lex-smallest)
	// representative event.
	reps []event.Event

	// members holds, for each orbit index, every event hash in the orbit
	// (in the order discovered).
	members [][]uint64
}

// Compute partitions the event space of arity k over the given outcome base
// under the action of group. For k == 0 there are no orbits (spec.md §4.2).
func Compute(group []symmetry.Symmetry, k, base int) *Partition {
	p := &Partition{K: k, Base: base, indexOf: make(map[uint64]int)}
	if k == 0 {
		return p
	}

	size := 1
	for i := 0; i < k; i++ {
		size *= base
	}
	seen := make([]bool, size)

	for h := 0; h < size; h++ {
		if seen[h] {
			continue
		}
		e := event.Unhash(uint64(h), base, k)
		orbitHashes := make([]uint64, 0, len(group))
		orbitSeen := make(map[uint64]bool)
		for _, sigma := range group {
			img := sigma.ActOnEvent(e)
			ih := event.Hash(img, base)
			if !orbitSeen[ih] {
				orbitSeen[ih] = true
				orbitHashes = append(orbitHashes, ih)
			}
		}
		if len(orbitHashes) == 0 {
			// Degenerate empty group: treat e as its own singleton orbit.
			orbitHashes = []uint64{uint64(h)}
		}
		idx := len(p.reps)
		// The representative is the lex-smallest member; since we enumerate
		// events in lex order and h is the first unseen hash, h itself is
		// the smallest member encountered so far, but the group orbit may
		// still contain an even smaller one we have not reached yet only if
		// it were < h, which would contradict h being first-unseen. Hence
		// e (at hash h) is exactly the lex-smallest orbit member.
		p.reps = append(p.reps, e)
		members := make([]uint64, len(orbitHashes))
		copy(members, orbitHashes)
		p.members = append(p.members, members)
		for _, oh := range orbitHashes {
			if !seen[oh] {
				seen[oh] = true
				p.indexOf[oh] = idx
			}
		}
	}
	return p
}

// NumOrbits returns the number of distinct orbits.
func (p *Partition) NumOrbits() int { return len(p.reps) }

// Representative returns the canonical representative event of the orbit
// with the given index.
func (p *Partition) Representative(idx int) event.Event { return p.reps[idx] }

// Members returns every event hash belonging to the orbit with the given
// index. Callers must not mutate the result.
func (p *Partition) Members(idx int) []uint64 { return p.members[idx] }

// IndexOf returns the orbit index containing the event with the given hash.
func (p *Partition) IndexOf(hash uint64) (int, bool) {
	idx, ok := p.indexOf[hash]
	return idx, ok
}
