// SPDX-License-Identifier: MIT

package symmetry

import (
	"testing"

	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/stretchr/testify/require"
)

func TestActOnEventConsistency(t *testing.T) {
	// sigma_party: 0->1, 1->2, 2->0 ; sigma_outcome: 0->1,1->0
	party, _ := NewPartySym([]int{1, 2, 0}, true)
	outcome, _ := NewOutcomeSym([]int{1, 0})
	s := New(party, outcome)

	e := event.Event{0, 1, 0}
	out := s.ActOnEvent(e)
	for i := 0; i < 3; i++ {
		require.Equal(t, outcome.Image(int(e[party.InverseImage(i)])), int(out[i]))
	}
}

func TestComposeThenActEqualsActThenAct(t *testing.T) {
	partyA, _ := NewPartySym([]int{1, 0, 2}, false)
	outA, _ := NewOutcomeSym([]int{1, 0})
	partyB, _ := NewPartySym([]int{0, 2, 1}, false)
	outB, _ := NewOutcomeSym([]int{0, 1})

	sigma := New(partyA, outA)
	tau := New(partyB, outB)

	e := event.Event{1, 0, 1}
	direct, err := sigma.ComposeAfter(tau)
	require.NoError(t, err)

	lhs := direct.ActOnEvent(e)
	rhs := sigma.ActOnEvent(tau.ActOnEvent(e))
	require.True(t, lhs.Equal(rhs))
}

func TestGroupClosureAndContains(t *testing.T) {
	id := Identity(3, 2)
	p, _ := NewPartySym([]int{1, 2, 0}, true)
	o := IdentityOutcomeSym(2)
	rot := New(p, o)
	rot2, _ := rot.ComposeAfter(rot)
	rot3, _ := rot2.ComposeAfter(rot)

	g := NewGroup([]Symmetry{id, rot, rot2, rot3})
	require.Equal(t, 3, g.Len()) // rot3 == identity
	require.True(t, g.Contains(id))
	require.True(t, g.IsClosedUnderComposition())
}
