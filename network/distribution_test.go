// SPDX-License-Identifier: MIT

package network

import (
	"testing"

	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/stretchr/testify/require"
)

func sharedRandomBit(t *testing.T) *TargetDistr {
	t.Helper()
	net, err := New(2)
	require.NoError(t, err)
	tn, err := event.NewTensor(3, 2)
	require.NoError(t, err)
	tn.SetNum(event.Event{0, 0, 0}, 1)
	tn.SetNum(event.Event{1, 1, 1}, 1)
	require.NoError(t, tn.SetDenom(2))
	d, err := NewTargetDistr(net, tn)
	require.NoError(t, err)
	return d
}

func TestTargetDistrSymGroupContainsAllPartyPermutations(t *testing.T) {
	d := sharedRandomBit(t)
	// All 6 party permutations leave the diagonal distribution invariant
	// (each must be paired with the identity outcome permutation).
	seenParties := 0
	for _, s := range d.SymGroup.Elements() {
		if s.Outcome.IsTrivial() {
			seenParties++
		}
	}
	require.Equal(t, 6, seenParties)
}

func TestTargetDistrMarginalIsConsistent(t *testing.T) {
	d := sharedRandomBit(t)
	marg, err := d.Marginal([]int{0, 1})
	require.NoError(t, err)
	require.True(t, marg.IsProbabilityDistribution())
	require.Equal(t, marg.Num(event.Event{0, 0}), marg.Num(event.Event{1, 1}))
}

func TestNewRejectsNonDistribution(t *testing.T) {
	net, _ := New(2)
	tn, _ := event.NewTensor(3, 2)
	tn.SetNum(event.Event{0, 0, 0}, 3) // sums to 3, denom defaults to 1
	_, err := NewTargetDistr(net, tn)
	require.ErrorIs(t, err, ErrNotAProbabilityDistribution)
}
