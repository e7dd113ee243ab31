// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - depth of the node holding key, zero for the root, or -1
// if the key is not in the tree
func (tree *Tree) Contains(key int) int {
	p := search(key, tree.root)
	if nil == p {
		return -1
	}
	return p.Depth()
}

// Search - find the node for a specific key, nil if not present
func (tree *Tree) Search(key int) *Node {
	return search(key, tree.root)
}

func search(key int, p *Node) *Node {
	for nil != p {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
