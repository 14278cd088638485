// SPDX-License-Identifier: MIT

package constraint

import (
	"testing"

	"github.com/lvlath-research/triangle-inflation/inflation"
	"github.com/stretchr/testify/require"
)

func TestMarginalSingleFullNetworkHasFullDenom(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf := smallInflation(t, d)

	all := make([]int, inf.NumParties())
	for i := range all {
		all[i] = i
	}
	m := NewMarginal(all, inf.Group())
	require.Len(t, m.Reduced(), m.Denom())
	require.GreaterOrEqual(t, m.Denom(), 1)
	require.LessOrEqual(t, m.Denom(), inf.Group().Len())
}

func TestMarginalEmptyPartiesIsScalar(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf := smallInflation(t, d)

	m := NewMarginal(nil, inf.Group())
	require.Equal(t, 1, m.Denom())
}

func TestMarginalSinglePartyReducesToSelfStabilizer(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := inflation.New(d, inflation.Size{1, 1, 2}, false)
	require.NoError(t, err)

	idx, err := inf.IndexOfName("A00")
	require.NoError(t, err)

	m := NewMarginal([]int{idx}, inf.Group())
	require.GreaterOrEqual(t, m.Denom(), 1)
	require.LessOrEqual(t, m.Denom(), inf.Group().Len())
}
