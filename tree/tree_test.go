/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package tree

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyTree(t *testing.T) {

	tree := New()

	assert.True(t, tree.IsEmpty(), "A new tree should be empty")
	assert.Equal(t, 0, tree.Size(), "A new tree should have no nodes")

	_, ok := tree.Root()
	assert.False(t, ok, "A new tree should not have a root")
}

func TestAddRoot(t *testing.T) {

	tree := New()

	root, err := tree.AddRoot(5)
	require.NoError(t, err)
	assert.False(t, tree.IsEmpty())
	assert.Equal(t, 1, tree.Size())
	assert.Equal(t, 5, tree.Value(root))
	assert.False(t, tree.HasLeft(root))
	assert.False(t, tree.HasRight(root))

	got, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, root, got)

	_, ok = tree.Parent(root)
	assert.False(t, ok, "The root should not have a parent")
}

func TestAddRootTwice(t *testing.T) {

	tree := New()

	first, err := tree.AddRoot(1)
	require.NoError(t, err)

	_, err = tree.AddRoot(2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateRoot), "Unexpected error: %v", err)

	root, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, first, root, "The first root should be kept")
	assert.Equal(t, 1, tree.Value(root))
	assert.Equal(t, 1, tree.Size(), "The count should not change")
}

func TestAddChild(t *testing.T) {

	tree := New()
	root, err := tree.AddRoot(5)
	require.NoError(t, err)

	left, err := tree.AddChild(root, 3, true)
	require.NoError(t, err)
	right, err := tree.AddChild(root, 8, false)
	require.NoError(t, err)

	assert.Equal(t, 3, tree.Size())

	got, ok := tree.Left(root)
	require.True(t, ok)
	assert.Equal(t, left, got)
	assert.Equal(t, 3, tree.Value(got))

	got, ok = tree.Right(root)
	require.True(t, ok)
	assert.Equal(t, right, got)
	assert.Equal(t, 8, tree.Value(got))

	for _, child := range []Position{left, right} {
		parent, ok := tree.Parent(child)
		require.True(t, ok)
		assert.Equal(t, root, parent, "The child %v should point back to the root", child)
	}
}

func TestAddChildValuesAreNotOrdered(t *testing.T) {

	tree := New()
	root, err := tree.AddRoot(5)
	require.NoError(t, err)

	_, err = tree.AddChild(root, 100, true)
	require.NoError(t, err)
	_, err = tree.AddChild(root, -100, false)
	require.NoError(t, err)

	assert.Equal(t, "    100\n5\n    -100\n", Sprint(tree, root, DefaultIndent))
}

func TestAddChildOverwrites(t *testing.T) {

	tree := New()
	root, err := tree.AddRoot(1)
	require.NoError(t, err)

	old, err := tree.AddChild(root, 2, true)
	require.NoError(t, err)
	_, err = tree.AddChild(old, 3, false)
	require.NoError(t, err)

	replacement, err := tree.AddChild(root, 4, true)
	require.NoError(t, err)

	left, ok := tree.Left(root)
	require.True(t, ok)
	assert.Equal(t, replacement, left)
	assert.False(t, tree.HasLeft(replacement))
	assert.False(t, tree.HasRight(replacement))

	// The overwritten subtree is unreachable but still counted.
	assert.Equal(t, 4, tree.Size())

	for _, value := range []int{2, 3} {
		_, found := Find(tree, value)
		assert.False(t, found, "The value %d should no longer be reachable", value)
	}
	assert.Equal(t, "    4\n1\n", Sprint(tree, root, DefaultIndent))
}

func TestSizeCountsInsertions(t *testing.T) {

	testCases := []struct {
		children []int
	}{
		{children: nil},
		{children: []int{2}},
		{children: []int{2, 3, 4, 5, 6}},
	}

	for i, c := range testCases {
		tree := New()
		parent, err := tree.AddRoot(1)
		require.NoError(t, err)

		for j, value := range c.children {
			parent, err = tree.AddChild(parent, value, j%2 == 0)
			require.NoErrorf(t, err, "Error adding child in test %d", i)
		}

		assert.Equalf(t, 1+len(c.children), tree.Size(), "Wrong size in test %d", i)
	}
}

func TestInvalidPosition(t *testing.T) {

	tree := New()

	_, err := tree.AddChild(Position{index: 3}, 1, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPosition), "Unexpected error: %v", err)
	assert.Equal(t, 0, tree.Size())

	assert.False(t, tree.HasLeft(Position{index: 3}))
	assert.Panics(t, func() { tree.Value(Position{index: 3}) })
}
