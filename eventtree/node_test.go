// SPDX-License-Identifier: MIT

package eventtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertNodeDeduplicates(t *testing.T) {
	tree := NewTree(2)
	i1, err := tree.InsertNode(0, 1, []int32{0, 1})
	require.NoError(t, err)
	i2, err := tree.InsertNode(0, 1, []int32{0, 1})
	require.NoError(t, err)
	require.Equal(t, i1, i2)
	require.Equal(t, 1, tree.LevelLen(0))

	i3, err := tree.InsertNode(0, 1, []int32{0, 2})
	require.NoError(t, err)
	require.NotEqual(t, i1, i3)
	require.Equal(t, 2, tree.LevelLen(0))
}

func TestInsertNodeRejectsTooManyChildren(t *testing.T) {
	tree := NewTree(2)
	children := make([]int32, 256)
	_, err := tree.InsertNode(0, 0, children)
	require.ErrorIs(t, err, ErrTooManyChildren)
}

func TestFinishInitializationTallies(t *testing.T) {
	tree := NewTree(2)
	_, _ = tree.InsertNode(1, 0, nil)
	_, _ = tree.InsertNode(1, 1, nil)
	_, _ = tree.InsertNode(0, 0, []int32{0, 1})
	tree.FinishInitialization()
	require.Equal(t, 3, tree.NumNodes())
	require.Equal(t, 2, tree.NumLeaves())
}
