// SPDX-License-Identifier: MIT

package symmetry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcomeSymInverseRoundTrips(t *testing.T) {
	o, err := NewOutcomeSym([]int{1, 2, 0})
	require.NoError(t, err)
	inv := o.Inverse()
	for a := 0; a < 3; a++ {
		require.Equal(t, a, inv.Image(o.Image(a)))
	}
}

func TestOutcomeSymIsTrivial(t *testing.T) {
	id := IdentityOutcomeSym(5)
	require.True(t, id.IsTrivial())

	o, _ := NewOutcomeSym([]int{1, 0})
	require.False(t, o.IsTrivial())
}

func TestOutcomeSymWithUnknownFixed(t *testing.T) {
	o, _ := NewOutcomeSym([]int{1, 0})
	ext := o.WithUnknownFixed()
	require.Equal(t, 3, ext.Len())
	require.Equal(t, 2, ext.Image(2))
	require.Equal(t, 1, ext.Image(0))
}
