// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a single key in the tree
type Node struct {
	left    *Node // left sub-tree
	right   *Node // right sub-tree
	up      *Node // points to parent node, nil for the root
	key     int   // key part for ordering
	height  int   // height of this sub-tree, a leaf is zero
	balance int   // height(right) - height(left): -1, 0, +1
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root       *Node
	count      int
	generation uint64 // incremented on every successful mutation
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// NewFromSlice - create a tree by adding each value of data in order
//
// if a value appears more than once only the first is added
func NewFromSlice(data []int) *Tree {
	tree := New()
	for _, key := range data {
		tree.Add(key)
	}
	return tree
}

// Clone - create a deep copy of a tree
//
// the copy shares no nodes with the original and holds the same keys
// but its shape may differ
func (tree *Tree) Clone() *Tree {
	c := New()
	for p := tree.root.first(); nil != p; p = p.successor() {
		c.Add(p.key)
	}
	return c
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree) Size() int {
	return tree.count
}

// Height - height of the whole tree, -1 if empty
func (tree *Tree) Height() int {
	return tree.root.safeHeight()
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Key - read the key from a node
func (p *Node) Key() int {
	return p.key
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Depth - number of links between a node and the root
func (p *Node) Depth() int {
	count := 0
	for parent := p.up; nil != parent; parent = parent.up {
		count += 1
	}
	return count
}

// MinNodesForHeight - the fewest nodes an AVL tree of height h can
// hold
//
// follows N(h) = N(h-1) + N(h-2) + 1 with N(0) = 1 and N(1) = 2; the
// empty tree has height -1 so any h < 0 gives zero; the result
// overflows int for h > MaxHeight
func MinNodesForHeight(h int) int {
	if h < 0 {
		return 0
	}
	previous, current := 0, 1 // N(-1), N(0)
	for i := 0; i < h; i += 1 {
		previous, current = current, current+previous+1
	}
	return current
}

// MaxHeight - the largest height whose minimum node count fits in an int
var MaxHeight = maxHeight()

func maxHeight() int {
	previous, current := 0, 1 // N(-1), N(0)
	for h := 0; ; h += 1 {
		next := current + previous + 1
		if next < current {
			return h
		}
		previous, current = current, next
	}
}
