// SPDX-License-Identifier: MIT

package network

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFullGroupSize(t *testing.T) {
	net, err := New(2)
	require.NoError(t, err)
	g := net.FullGroup()
	require.Equal(t, 6*2, g.Len()) // 6 * n!
}

func TestFullGroupIsClosed(t *testing.T) {
	net, _ := New(2)
	g := net.FullGroup()
	require.True(t, g.IsClosedUnderComposition())
}

func TestTrivialGroupIsIdentityOnly(t *testing.T) {
	net, _ := New(3)
	g := net.TrivialGroup()
	require.Equal(t, 1, g.Len())
}

func TestPartyAutomorphismParities(t *testing.T) {
	net, _ := New(2)
	parities := map[bool]int{}
	for _, p := range net.PartyAutomorphisms() {
		parities[p.IsEven()]++
	}
	require.Equal(t, 3, parities[true])
	require.Equal(t, 3, parities[false])
}
