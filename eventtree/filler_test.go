// SPDX-License-Identifier: MIT

package eventtree

import (
	"bytes"
	"testing"

	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/inflation"
	"github.com/lvlath-research/triangle-inflation/network"
	"github.com/lvlath-research/triangle-inflation/orbit"
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

// TestFillTreeLeafCountMatchesOrbitCount checks spec.md §8's tree-fill
// completeness property: the tree's leaf set equals the canonical
// representatives of inflation events under the inflation symmetry group.
func TestFillTreeLeafCountMatchesOrbitCount(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := inflation.New(d, inflation.Size{1, 1, 1}, false)
	require.NoError(t, err)

	tree := NewTreeFiller(inf).Fill()
	partition := orbit.Compute(inf.Group().Elements(), inf.NumParties(), d.Net.NOutcomes)
	require.Equal(t, partition.NumOrbits(), tree.NumLeaves())
}

func TestFillTreeWithNontrivialGroupHasFewerLeavesThanFullSpace(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := inflation.New(d, inflation.Size{2, 2, 2}, false)
	require.NoError(t, err)

	tree := NewTreeFiller(inf).Fill()
	fullSpace := 1
	for i := 0; i < inf.NumParties(); i++ {
		fullSpace *= d.Net.NOutcomes
	}
	require.Less(t, tree.NumLeaves(), fullSpace)
	require.Greater(t, tree.NumLeaves(), 0)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := inflation.New(d, inflation.Size{1, 1, 1}, false)
	require.NoError(t, err)
	tree := NewTreeFiller(inf).Fill()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, tree))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, tree.Depth(), decoded.Depth())
	require.Equal(t, tree.NumNodes(), decoded.NumNodes())
	require.Equal(t, tree.NumLeaves(), decoded.NumLeaves())
	for d := 0; d < tree.Depth(); d++ {
		require.Equal(t, tree.LevelLen(d), decoded.LevelLen(d))
		for i := 0; i < tree.LevelLen(d); i++ {
			require.Equal(t, tree.NodeAt(d, i), decoded.NodeAt(d, i))
		}
	}
}
