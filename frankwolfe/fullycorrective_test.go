// SPDX-License-Identifier: MIT

package frankwolfe

import (
	"math"
	"testing"

	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/stretchr/testify/require"
)

func TestFullyCorrectiveSingleVertexAlignsWithIt(t *testing.T) {
	fc := NewFullyCorrective(2)
	require.NoError(t, fc.MemorizeEventAndQuovec(event.Event{0, 0}, []int64{3, 4}, 1))

	sol := fc.Solve()
	require.True(t, sol.Valid)
	require.Greater(t, sol.S, 0.0)
	require.InDelta(t, 1, math.Hypot(sol.Vec[0], sol.Vec[1]), 1e-6)
}

func TestFullyCorrectiveOppositeVerticesAreNotValid(t *testing.T) {
	fc := NewFullyCorrective(1)
	require.NoError(t, fc.MemorizeEventAndQuovec(event.Event{0}, []int64{1}, 1))
	require.NoError(t, fc.MemorizeEventAndQuovec(event.Event{1}, []int64{-1}, 1))

	sol := fc.Solve()
	require.False(t, sol.Valid)
}

func TestFullyCorrectiveSameSideVerticesAreValid(t *testing.T) {
	fc := NewFullyCorrective(2)
	require.NoError(t, fc.MemorizeEventAndQuovec(event.Event{0, 0}, []int64{4, 0}, 1))
	require.NoError(t, fc.MemorizeEventAndQuovec(event.Event{0, 1}, []int64{0, 4}, 1))

	sol := fc.Solve()
	require.True(t, sol.Valid)
	require.Greater(t, dot(sol.Vec, []float64{4, 0}), 0.0)
	require.Greater(t, dot(sol.Vec, []float64{0, 4}), 0.0)
}

func TestFullyCorrectiveResetClearsState(t *testing.T) {
	fc := NewFullyCorrective(1)
	require.NoError(t, fc.MemorizeEventAndQuovec(event.Event{0}, []int64{1}, 1))
	fc.Reset()
	require.Empty(t, fc.GetStoredEvents())
	require.Equal(t, Solution{}, fc.Solve())
}

func TestFullyCorrectiveRejectsDimensionMismatch(t *testing.T) {
	fc := NewFullyCorrective(2)
	err := fc.MemorizeEventAndQuovec(event.Event{0}, []int64{1}, 1)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
