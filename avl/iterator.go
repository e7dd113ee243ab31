// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node) Next() *Node {
	return tree.successor()
}

// internal: climb while coming from a right child, the first parent
// reached from a left child is the successor
func (tree *Node) successor() *Node {
	if tree.right != nil {
		return tree.right.first()
	}
	up := tree.up
	for up != nil && up.right == tree {
		tree = up
		up = tree.up
	}
	return up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (tree *Node) Prev() *Node {
	if tree.left != nil {
		return tree.left.last()
	}
	up := tree.up
	for up != nil && up.left == tree {
		tree = up
		up = tree.up
	}
	return up
}

// Min - lowest key, false if the tree is empty
func (tree *Tree) Min() (int, bool) {
	p := tree.First()
	if nil == p {
		return 0, false
	}
	return p.key, true
}

// Max - highest key, false if the tree is empty
func (tree *Tree) Max() (int, bool) {
	p := tree.Last()
	if nil == p {
		return 0, false
	}
	return p.key, true
}

// Walk - call fn for each key in ascending order until it returns false
func (tree *Tree) Walk(fn func(key int) bool) {
	for p := tree.First(); nil != p; p = p.successor() {
		if !fn(p.key) {
			return
		}
	}
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.count)
	tree.Walk(func(key int) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Iterator - ascending cursor over the keys of a tree
//
// an iterator is not restartable and becomes invalid once the tree is
// modified
type Iterator struct {
	tree       *Tree
	current    *Node
	generation uint64
}

// Iterator - create a cursor positioned at the lowest key
func (tree *Tree) Iterator() *Iterator {
	return &Iterator{
		tree:       tree,
		current:    tree.First(),
		generation: tree.generation,
	}
}

// HasNext - true if Next would return a key
func (it *Iterator) HasNext() bool {
	return nil != it.current
}

// Next - return the current key and advance
func (it *Iterator) Next() (int, error) {
	if it.generation != it.tree.generation {
		return 0, fault.ErrTreeModified
	}
	if nil == it.current {
		return 0, fault.ErrNoMoreElements
	}
	key := it.current.key
	it.current = it.current.successor()
	return key, nil
}

// Remove - removal through an iterator is not supported
func (it *Iterator) Remove() error {
	return fault.ErrRemoveNotSupported
}
