// SPDX-License-Identifier: MIT

package oracle

import (
	"context"
	"testing"

	"github.com/lvlath-research/triangle-inflation/constraint"
	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/eventtree"
	"github.com/lvlath-research/triangle-inflation/inflation"
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

func diagonalConstraintSet(t *testing.T, size inflation.Size) (*inflation.Inflation, *constraint.ConstraintSet) {
	t.Helper()
	d := sharedRandomBitDistr(t)
	inf, err := inflation.New(d, size, false)
	require.NoError(t, err)
	cs, err := constraint.NewConstraintSet(inf, [][]string{{"A00,B00,C00", ""}}, d, true)
	require.NoError(t, err)
	return inf, cs
}

func TestBruteForceFindsNonpositiveScoreAtZeroDualVector(t *testing.T) {
	inf, cs := diagonalConstraintSet(t, inflation.Size{1, 1, 1})
	coeffs := make([]int64, cs.TotalQuovecLen())
	require.NoError(t, cs.SetDualVectorFromQuovec(coeffs))

	bf := NewBruteForce(cs)
	sol, err := bf.Optimize(context.Background(), Opt)
	require.NoError(t, err)
	require.Len(t, sol.Event, inf.NumParties())
	require.Equal(t, int64(0), sol.Score)
}

func TestTreeSearchAgreesWithBruteForceScore(t *testing.T) {
	inf, cs := diagonalConstraintSet(t, inflation.Size{1, 1, 1})

	coeffs := make([]int64, cs.TotalQuovecLen())
	for i := range coeffs {
		coeffs[i] = int64(i) - int64(len(coeffs)/2)
	}
	require.NoError(t, cs.SetDualVectorFromQuovec(coeffs))

	bf := NewBruteForce(cs)
	bfSol, err := bf.Optimize(context.Background(), Opt)
	require.NoError(t, err)

	tree := eventtree.NewTreeFiller(inf).Fill()
	ts, err := NewTreeSearch(cs, tree, 3)
	require.NoError(t, err)
	tsSol, err := ts.Optimize(context.Background(), Opt)
	require.NoError(t, err)

	require.Equal(t, bfSol.Score, tsSol.Score)
}

func TestTreeSearchSatModeStopsEarlyAtNonpositiveScore(t *testing.T) {
	inf, cs := diagonalConstraintSet(t, inflation.Size{1, 1, 1})
	coeffs := make([]int64, cs.TotalQuovecLen())
	require.NoError(t, cs.SetDualVectorFromQuovec(coeffs))

	tree := eventtree.NewTreeFiller(inf).Fill()
	ts, err := NewTreeSearch(cs, tree, 1)
	require.NoError(t, err)
	sol, err := ts.Optimize(context.Background(), Sat)
	require.NoError(t, err)
	require.LessOrEqual(t, sol.Score, int64(0))
}

func TestNewTreeSearchRejectsBadThreadCount(t *testing.T) {
	_, cs := diagonalConstraintSet(t, inflation.Size{1, 1, 1})
	tree := eventtree.NewTreeFiller(cs.Inflation).Fill()
	_, err := NewTreeSearch(cs, tree, 0)
	require.ErrorIs(t, err, ErrBadThreadCount)
}
