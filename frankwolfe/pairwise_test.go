// SPDX-License-Identifier: MIT

package frankwolfe

import (
	"testing"

	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/stretchr/testify/require"
)

func TestPairwiseSingleVertexReturnsItDirectly(t *testing.T) {
	p := NewPairwise(2)
	require.NoError(t, p.MemorizeEventAndQuovec(event.Event{0, 0}, []int64{3, 4}, 1))

	sol := p.Solve()
	require.True(t, sol.Valid)
	require.InDelta(t, 5, sol.S, 1e-9)
	require.InDelta(t, 3, sol.Vec[0], 1e-9)
	require.InDelta(t, 4, sol.Vec[1], 1e-9)
}

func TestPairwiseTwoVerticesOnOppositeSidesIsInconclusive(t *testing.T) {
	p := NewPairwise(1)
	require.NoError(t, p.MemorizeEventAndQuovec(event.Event{0}, []int64{1}, 1))
	require.NoError(t, p.MemorizeEventAndQuovec(event.Event{1}, []int64{-1}, 1))

	sol := p.Solve()
	require.False(t, sol.Valid)
}

func TestPairwiseTwoVerticesSameSideConverges(t *testing.T) {
	p := NewPairwise(2)
	require.NoError(t, p.MemorizeEventAndQuovec(event.Event{0, 0}, []int64{4, 0}, 1))
	require.NoError(t, p.MemorizeEventAndQuovec(event.Event{0, 1}, []int64{0, 4}, 1))

	sol := p.Solve()
	require.True(t, sol.Valid)
	require.Greater(t, sol.S, 0.0)
	require.Greater(t, dot(sol.Vec, []float64{4, 0}), 0.0)
	require.Greater(t, dot(sol.Vec, []float64{0, 4}), 0.0)
}

func TestPairwiseResetClearsState(t *testing.T) {
	p := NewPairwise(1)
	require.NoError(t, p.MemorizeEventAndQuovec(event.Event{0}, []int64{1}, 1))
	p.Reset()
	require.Empty(t, p.GetStoredEvents())
	require.Equal(t, Solution{}, p.Solve())
}

func TestPairwiseRejectsDimensionMismatch(t *testing.T) {
	p := NewPairwise(2)
	err := p.MemorizeEventAndQuovec(event.Event{0}, []int64{1}, 1)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestPairwiseMaxGapRatioSelectionAlsoConverges(t *testing.T) {
	p := NewPairwise(2)
	p.Selection = MaxGapRatio
	require.NoError(t, p.MemorizeEventAndQuovec(event.Event{0, 0}, []int64{4, 0}, 1))
	require.NoError(t, p.MemorizeEventAndQuovec(event.Event{0, 1}, []int64{0, 4}, 1))
	require.NoError(t, p.MemorizeEventAndQuovec(event.Event{1, 0}, []int64{3, 3}, 1))

	sol := p.Solve()
	require.True(t, sol.Valid)
}
