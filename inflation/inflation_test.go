// SPDX-License-Identifier: MIT

package inflation

import (
	"testing"

	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/network"
	"github.com/stretchr/testify/require"
)

func sharedRandomBitDistr(t *testing.T) *network.TargetDistr {
	t.Helper()
	net, err := network.New(2)
	require.NoError(t, err)
	tn, err := event.NewTensor(3, 2)
	require.NoError(t, err)
	tn.SetNum(event.Event{0, 0, 0}, 1)
	tn.SetNum(event.Event{1, 1, 1}, 1)
	require.NoError(t, tn.SetDenom(2))
	d, err := network.NewTargetDistr(net, tn)
	require.NoError(t, err)
	return d
}

func TestPartyCountsMatchSizeFormula(t *testing.T) {
	d := sharedRandomBitDistr(t)
	size := Size{2, 3, 4}
	inf, err := New(d, size, false)
	require.NoError(t, err)

	want := countOfType(0, size) + countOfType(1, size) + countOfType(2, size)
	require.Equal(t, want, inf.NumParties())
}

func TestPartyNameRoundTrip(t *testing.T) {
	p := Party{Type: 1, J: 2, K: 0}
	name := p.Name()
	require.Equal(t, "B20", name)
	got, err := ParsePartyName(name)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestParsePartyNameRejectsGarbage(t *testing.T) {
	_, err := ParsePartyName("Zoo")
	require.ErrorIs(t, err, ErrBadPartyName)
	_, err = ParsePartyName("AB")
	require.ErrorIs(t, err, ErrBadPartyName)
}

func TestPureSourceGroupSize(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := New(d, Size{2, 2, 2}, false)
	require.NoError(t, err)
	// 2! * 2! * 2! = 8 pure-source symmetries.
	require.Equal(t, 8, inf.Group().Len())
}

func TestDistributionLiftedGroupIsLargerOrEqual(t *testing.T) {
	d := sharedRandomBitDistr(t)
	pure, err := New(d, Size{2, 2, 2}, false)
	require.NoError(t, err)
	lifted, err := New(d, Size{2, 2, 2}, true)
	require.NoError(t, err)
	require.GreaterOrEqual(t, lifted.Group().Len(), pure.Group().Len())
}

func TestDSeparationOfDisjointSourceParties(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := New(d, Size{2, 2, 2}, false)
	require.NoError(t, err)

	// A00 is fed by beta-copy 0 and gamma-copy 0; B11 is fed by gamma-copy 1
	// and alpha-copy 1: disjoint sources.
	a00, err := inf.IndexOfName("A00")
	require.NoError(t, err)
	b11, err := inf.IndexOfName("B11")
	require.NoError(t, err)
	require.True(t, inf.AreDSeparated([]int{a00}, []int{b11}))

	// A00 and B01 both touch gamma-copy 0.
	b01, err := inf.IndexOfName("B01")
	require.NoError(t, err)
	require.False(t, inf.AreDSeparated([]int{a00}, []int{b01}))
}

func TestIsInjectableSetSingleParty(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := New(d, Size{2, 2, 2}, false)
	require.NoError(t, err)
	a00, err := inf.IndexOfName("A00")
	require.NoError(t, err)
	require.True(t, inf.IsInjectableSet([]int{a00}))
}

func TestIsInjectableSetConflictingCopies(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := New(d, Size{2, 2, 2}, false)
	require.NoError(t, err)
	// A00 requires beta-copy 0 -> 0; B10 requires gamma-copy 1, alpha-copy 0;
	// but A10 requires beta-copy 1 -> 0, conflicting with A00's beta-copy 0.
	a00, err := inf.IndexOfName("A00")
	require.NoError(t, err)
	a10, err := inf.IndexOfName("A10")
	require.NoError(t, err)
	require.False(t, inf.IsInjectableSet([]int{a00, a10}))
}
