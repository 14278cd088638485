// SPDX-License-Identifier: MIT

package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashUnhashRoundTrip(t *testing.T) {
	e := Event{2, 0, 1}
	h := Hash(e, 3)
	require.Equal(t, e, Unhash(h, 3, len(e)))
}

func TestHashIsPositionalBase(t *testing.T) {
	// Σ outcome[i] * base^i
	e := Event{1, 2}
	require.Equal(t, uint64(1+2*3), Hash(e, 3))
}

func TestEventLess(t *testing.T) {
	require.True(t, Event{0, 1}.Less(Event{0, 2}))
	require.True(t, Event{0, 1}.Less(Event{1, 0}))
	require.False(t, Event{1, 0}.Less(Event{0, 1}))
}
