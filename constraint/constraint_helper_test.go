// SPDX-License-Identifier: MIT

package constraint

import (
	"testing"

	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/inflation"
	"github.com/lvlath-research/triangle-inflation/network"
	"github.com/stretchr/testify/require"
)

// sharedRandomBitDistr builds the canonical two-outcome shared-random-bit
// target distribution (W = 0 or 1 with equal weight, all three parties
// agreeing) used throughout these tests.
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

// smallInflation builds a {1,1,1} pure-source-policy inflation over d,
// the smallest non-trivial case for constraint tests.
func smallInflation(t *testing.T, d *network.TargetDistr) *inflation.Inflation {
	t.Helper()
	inf, err := inflation.New(d, inflation.Size{1, 1, 1}, false)
	require.NoError(t, err)
	return inf
}
