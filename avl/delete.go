// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific key from the tree
//
// returns false if the key was not in the tree
func (tree *Tree) Delete(key int) bool {
	x := search(key, tree.root)
	if nil == x {
		return false
	}

	if nil != x.left && nil != x.right {
		// move the successor's key here then remove the
		// successor, which has no left child
		s := x.right.first()
		x.key = s.key
		x = s
	}
	tree.unlink(x)

	tree.count -= 1
	tree.generation += 1
	return true
}

// internal: remove a node with at most one child and rebalance from
// its former parent
func (tree *Tree) unlink(x *Node) {
	child := x.left
	if nil == child {
		child = x.right
	}
	parent := x.up

	if nil != child {
		child.up = parent
	}
	if nil == parent {
		tree.root = child
	} else if parent.left == x {
		parent.left = child
	} else {
		parent.right = child
	}

	x.left = nil
	x.right = nil
	x.up = nil

	if nil != parent {
		tree.rebalance(parent)
	}
}
