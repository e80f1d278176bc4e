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

// Package tree implements an unbalanced binary tree of integers where
// children are placed by an explicit left/right choice instead of by
// comparing values.
package tree

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrDuplicateRoot is returned when AddRoot is called on a tree that
	// already has a root.
	ErrDuplicateRoot = errors.New("tree already has a root")

	// ErrInvalidPosition is returned when a position does not belong to
	// the tree it is used with.
	ErrInvalidPosition = errors.New("invalid position")
)

// none marks an absent link in the node arena.
const none = -1

// node is a single cell of the arena. Children are owned by their parent,
// the parent index is only a back link.
type node struct {
	value               int
	left, right, parent int
}

// Position is an opaque handle to a node of a Tree.
type Position struct {
	index int
}

func (p Position) String() string {
	return fmt.Sprintf("(n %d)", p.index)
}

// Tree holds every node in a single arena indexed by Position. Nodes are
// never removed: a child overwritten by AddChild stays in the arena but is
// no longer reachable from the root.
type Tree struct {
	nodes []node
	root  int
	count int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: none}
}

func (t *Tree) IsEmpty() bool {
	return t.count == 0
}

func (t *Tree) Size() int {
	return t.count
}

// Root returns the root position, or false if the tree is empty.
func (t *Tree) Root() (Position, bool) {
	return t.position(t.root)
}

// Left returns the left child of p, or false if it has none.
func (t *Tree) Left(p Position) (Position, bool) {
	if !t.contains(p) {
		return Position{}, false
	}
	return t.position(t.nodes[p.index].left)
}

// Right returns the right child of p, or false if it has none.
func (t *Tree) Right(p Position) (Position, bool) {
	if !t.contains(p) {
		return Position{}, false
	}
	return t.position(t.nodes[p.index].right)
}

// Parent returns the node p is attached to, or false for the root.
func (t *Tree) Parent(p Position) (Position, bool) {
	if !t.contains(p) {
		return Position{}, false
	}
	return t.position(t.nodes[p.index].parent)
}

func (t *Tree) HasLeft(p Position) bool {
	_, ok := t.Left(p)
	return ok
}

func (t *Tree) HasRight(p Position) bool {
	_, ok := t.Right(p)
	return ok
}

// Value returns the value stored at p. It panics if p does not belong to
// the tree.
func (t *Tree) Value(p Position) int {
	if !t.contains(p) {
		panic(errors.Wrapf(ErrInvalidPosition, "value of %v", p))
	}
	return t.nodes[p.index].value
}

// AddRoot creates the root node. It fails with ErrDuplicateRoot if the
// root is already set, leaving the tree untouched.
func (t *Tree) AddRoot(value int) (Position, error) {
	if t.root != none {
		return Position{}, errors.Wrapf(ErrDuplicateRoot, "adding root %d", value)
	}
	t.root = t.alloc(value, none)
	t.count++
	return Position{t.root}, nil
}

// AddChild attaches a new node holding value as the left or right child of
// parent. An existing child on that side is silently replaced and its
// subtree becomes unreachable, but the node count is still incremented.
func (t *Tree) AddChild(parent Position, value int, isLeft bool) (Position, error) {
	if !t.contains(parent) {
		return Position{}, errors.Wrapf(ErrInvalidPosition, "adding child %d to %v", value, parent)
	}

	child := t.alloc(value, parent.index)
	if isLeft {
		t.nodes[parent.index].left = child
	} else {
		t.nodes[parent.index].right = child
	}
	t.count++
	return Position{child}, nil
}

func (t *Tree) alloc(value, parent int) int {
	t.nodes = append(t.nodes, node{
		value:  value,
		left:   none,
		right:  none,
		parent: parent,
	})
	return len(t.nodes) - 1
}

func (t *Tree) contains(p Position) bool {
	return p.index >= 0 && p.index < len(t.nodes)
}

func (t *Tree) position(index int) (Position, bool) {
	if index == none {
		return Position{}, false
	}
	return Position{index}, true
}
