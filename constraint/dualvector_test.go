// SPDX-License-Identifier: MIT

package constraint

import (
	"bytes"
	"testing"

	"github.com/lvlath-research/triangle-inflation/symmetry"
	"github.com/stretchr/testify/require"
)

func TestDualVectorScalarArity(t *testing.T) {
	dv := NewDualVector(0, 2, nil, false, Lower)
	require.Equal(t, 1, dv.NumNoUnknown())
	require.NoError(t, dv.SetFromQuovec([]int64{7}, 0))
	require.Equal(t, int64(7), dv.At(0))
}

func TestDualVectorTrivialGroupHasOneOrbitPerEvent(t *testing.T) {
	group := []symmetry.Symmetry{symmetry.Identity(2, 2)}
	dv := NewDualVector(2, 2, group, false, Lower)
	require.Equal(t, 4, dv.NumNoUnknown())
}

func TestDualVectorEncodeDecodeRoundTrip(t *testing.T) {
	group := []symmetry.Symmetry{symmetry.Identity(2, 2)}
	dv := NewDualVector(2, 2, group, false, Lower)
	coeffs := make([]int64, dv.NumNoUnknown())
	for i := range coeffs {
		coeffs[i] = int64(i + 1)
	}
	require.NoError(t, dv.SetFromQuovec(coeffs, 0))

	var buf bytes.Buffer
	require.NoError(t, dv.Encode(&buf))

	dv2 := NewDualVector(2, 2, group, false, Lower)
	require.NoError(t, dv2.Decode(&buf))
	for i := range coeffs {
		require.Equal(t, dv.coeffs[i], dv2.coeffs[i])
	}
}

func TestDualVectorBoundAwarePropagatesBoundRules(t *testing.T) {
	group := []symmetry.Symmetry{symmetry.Identity(1, 2)}
	dv := NewDualVector(1, 2, group, true, Lower)
	require.Equal(t, 2, dv.NumNoUnknown())

	require.NoError(t, dv.SetFromQuovec([]int64{9, 3}, 0))
	require.Equal(t, int64(3), dv.coeffs[dv.numNoUnknown]) // Lower bound: min over real resolutions
}

func TestDualVectorHardAssertWithinBound(t *testing.T) {
	dv := NewDualVector(0, 2, nil, false, Lower)
	require.NoError(t, dv.SetFromQuovec([]int64{5}, 0))
	require.NoError(t, dv.HardAssertWithinBound(10))
	require.ErrorIs(t, dv.HardAssertWithinBound(5), ErrOverflowRisk)
}
