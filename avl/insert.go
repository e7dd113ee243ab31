// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - insert a new key into the tree
//
// returns false and leaves the tree unchanged if the key is already
// present
func (tree *Tree) Add(key int) bool {
	n := &Node{
		key: key,
	}

	if nil == tree.root {
		tree.root = n
		tree.count += 1
		tree.generation += 1
		return true
	}

	p := tree.root
search:
	for {
		switch {
		case key < p.key:
			if nil == p.left {
				p.left = n
				break search
			}
			p = p.left
		case key > p.key:
			if nil == p.right {
				p.right = n
				break search
			}
			p = p.right
		default:
			return false
		}
	}
	n.up = p

	tree.rebalance(p)
	tree.count += 1
	tree.generation += 1
	return true
}
