// SPDX-License-Identifier: MIT

package orbit

import (
	"testing"

	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/symmetry"
	"github.com/stretchr/testify/require"
)

func cyclicGroup3(n int) []symmetry.Symmetry {
	p, _ := symmetry.NewPartySym([]int{1, 2, 0}, true)
	id := symmetry.IdentityOutcomeSym(n)
	rot := symmetry.New(p, id)
	rot2, _ := rot.ComposeAfter(rot)
	identity := symmetry.Identity(3, n)
	return []symmetry.Symmetry{identity, rot, rot2}
}

func TestPartitionTotalityFreeAction(t *testing.T) {
	group := cyclicGroup3(2)
	p := Compute(group, 3, 2)

	total := 0
	for i := 0; i < p.NumOrbits(); i++ {
		total += len(p.Members(i))
	}
	require.Equal(t, 8, total)

	// Every event maps to exactly one orbit, and to a representative that is
	// itself a member of that same orbit.
	for h := uint64(0); h < 8; h++ {
		idx, ok := p.IndexOf(h)
		require.True(t, ok)
		rep := p.Representative(idx)
		found := false
		for _, m := range p.Members(idx) {
			if m == h {
				found = true
			}
		}
		require.True(t, found)
		_ = rep
	}
}

func TestPartitionRepresentativeIsLexSmallest(t *testing.T) {
	group := cyclicGroup3(2)
	p := Compute(group, 3, 2)
	for i := 0; i < p.NumOrbits(); i++ {
		rep := p.Representative(i)
		repHash := event.Hash(rep, 2)
		for _, m := range p.Members(i) {
			require.LessOrEqual(t, repHash, m)
		}
	}
}

func TestPartitionEmptyArity(t *testing.T) {
	p := Compute(nil, 0, 2)
	require.Equal(t, 0, p.NumOrbits())
}
