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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEmpty(t *testing.T) {

	for _, value := range []int{0, 1, -1} {
		_, ok := Find(New(), value)
		assert.Falsef(t, ok, "Nothing should be found in an empty tree for %d", value)
	}
}

func TestFind(t *testing.T) {

	tree := New()
	root, err := tree.AddRoot(1)
	require.NoError(t, err)
	two, err := tree.AddChild(root, 2, true)
	require.NoError(t, err)
	three, err := tree.AddChild(root, 3, false)
	require.NoError(t, err)
	four, err := tree.AddChild(two, 4, true)
	require.NoError(t, err)

	testCases := []struct {
		value    int
		expected Position
		found    bool
	}{
		{1, root, true},
		{2, two, true},
		{3, three, true},
		{4, four, true},
		{5, Position{}, false},
	}

	for i, c := range testCases {
		pos, ok := Find(tree, c.value)
		require.Equalf(t, c.found, ok, "Wrong lookup result in test %d", i)
		if c.found {
			assert.Equalf(t, c.expected, pos, "Wrong position in test %d", i)
			assert.Equalf(t, c.value, tree.Value(pos), "Wrong value in test %d", i)
		}
	}
}

func TestFindPreOrderTieBreak(t *testing.T) {

	tree := New()
	root, err := tree.AddRoot(1)
	require.NoError(t, err)
	two, err := tree.AddChild(root, 2, true)
	require.NoError(t, err)
	three, err := tree.AddChild(root, 3, false)
	require.NoError(t, err)
	leftFour, err := tree.AddChild(two, 4, true)
	require.NoError(t, err)
	_, err = tree.AddChild(three, 4, false)
	require.NoError(t, err)

	pos, ok := Find(tree, 4)
	require.True(t, ok)
	assert.Equal(t, leftFour, pos, "The left subtree match should win")

	parent, ok := tree.Parent(pos)
	require.True(t, ok)
	assert.Equal(t, 2, tree.Value(parent))
}

func TestFindDeepLeftBeatsShallowRight(t *testing.T) {

	tree := New()
	root, err := tree.AddRoot(0)
	require.NoError(t, err)

	parent := root
	for i := 0; i < 5; i++ {
		parent, err = tree.AddChild(parent, 10+i, true)
		require.NoError(t, err)
	}
	deep, err := tree.AddChild(parent, 7, true)
	require.NoError(t, err)
	_, err = tree.AddChild(root, 7, false)
	require.NoError(t, err)

	pos, ok := Find(tree, 7)
	require.True(t, ok)
	assert.Equal(t, deep, pos)
}
