// SPDX-License-Identifier: MIT

package symmetry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPartySymRejectsNonPermutation(t *testing.T) {
	_, err := NewPartySym([]int{0, 0}, true)
	require.ErrorIs(t, err, ErrNotAPermutation)
}

func TestPartySymInverse(t *testing.T) {
	p, err := NewPartySym([]int{2, 0, 1}, true)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.Equal(t, i, p.InverseImage(p.Image(i)))
	}
}

func TestPartySymComposeAfterIsAssociative(t *testing.T) {
	a, _ := NewPartySym([]int{1, 2, 0}, true)
	b, _ := NewPartySym([]int{0, 2, 1}, false)
	c, _ := NewPartySym([]int{2, 1, 0}, false)

	ab, err := a.ComposeAfter(b)
	require.NoError(t, err)
	abc1, err := ab.ComposeAfter(c)
	require.NoError(t, err)

	bc, err := b.ComposeAfter(c)
	require.NoError(t, err)
	abc2, err := a.ComposeAfter(bc)
	require.NoError(t, err)

	require.True(t, abc1.Equal(abc2))
	// parity of a composition is the XOR of the two parities: a(even) after
	// b(odd) is odd, and composing that again with c(odd) is even.
	require.True(t, abc1.IsEven())
}

func TestPartySymIdentity(t *testing.T) {
	id := IdentityPartySym(4)
	for i := 0; i < 4; i++ {
		require.Equal(t, i, id.Image(i))
	}
	require.True(t, id.IsEven())
}
