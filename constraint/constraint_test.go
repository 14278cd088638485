// SPDX-License-Identifier: MIT

package constraint

import (
	"testing"

	"github.com/lvlath-research/triangle-inflation/inflation"
	"github.com/stretchr/testify/require"
)

func TestNewConstraintBuildsVectorsForMarginalDescription(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := inflation.New(d, inflation.Size{1, 1, 2}, false)
	require.NoError(t, err)

	parsed, err := Parse(inf, []string{"A00", "B10"})
	require.NoError(t, err)

	c, err := New(inf, parsed, d, false)
	require.NoError(t, err)
	require.NotNil(t, c.LHSVec)
	require.NotNil(t, c.RHSVec)
	require.Greater(t, c.QuovecSize(), 0)
}

func TestConstraintPureSourcePolicyAcceptsAnyDistribution(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := inflation.New(d, inflation.Size{1, 1, 2}, false)
	require.NoError(t, err)

	parsed, err := Parse(inf, []string{"A00", "B10"})
	require.NoError(t, err)

	c, err := New(inf, parsed, d, false)
	require.NoError(t, err)

	d2 := sharedRandomBitDistr(t)
	require.NoError(t, c.SetTargetDistribution(d2))
}

func TestConstraintQuovecComputationDoesNotPanic(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := inflation.New(d, inflation.Size{1, 1, 2}, false)
	require.NoError(t, err)

	parsed, err := Parse(inf, []string{"A00", "B10"})
	require.NoError(t, err)

	c, err := New(inf, parsed, d, false)
	require.NoError(t, err)

	ret := make([]int64, c.QuovecSize())
	e := inf.AllZeroEvent()
	require.NotPanics(t, func() {
		c.ComputeInflationEventQuovec(e, ret, 0, 1, 1)
	})
}
