// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// balance outside the range -1…+1 that needs a rotation
const (
	leftHeavy  = -2
	rightHeavy = +2
)

// height of a possibly empty sub-tree
func (p *Node) safeHeight() int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute cached values from the children, which must already be
// up to date
func (p *Node) update() {
	l := p.left.safeHeight()
	r := p.right.safeHeight()
	if l > r {
		p.height = l + 1
	} else {
		p.height = r + 1
	}
	p.balance = r - l
}

// walk from p to the root restoring balance on the way
func (tree *Tree) rebalance(p *Node) {
	for {
		p.update()

		switch p.balance {
		case leftHeavy:
			if p.left.left.safeHeight() >= p.left.right.safeHeight() {
				p = rotateRight(p) // LL
			} else {
				rotateLeft(p.left) // LR
				p = rotateRight(p)
			}
		case rightHeavy:
			if p.right.right.safeHeight() >= p.right.left.safeHeight() {
				p = rotateLeft(p) // RR
			} else {
				rotateRight(p.right) // RL
				p = rotateLeft(p)
			}
		}

		if nil == p.up {
			tree.root = p
			return
		}
		p = p.up
	}
}

// make the new sub-tree root v occupy the slot n had in its parent
func replaceChild(parent *Node, n *Node, v *Node) {
	if nil == parent {
		return
	}
	if parent.left == n {
		parent.left = v
	} else {
		parent.right = v
	}
}

// turns (n (v a b) c) into (v a (n b c)), returns v
func rotateRight(n *Node) *Node {
	v := n.left
	v.up = n.up
	n.left = v.right
	if nil != n.left {
		n.left.up = n
	}
	v.right = n
	n.up = v
	replaceChild(v.up, n, v)

	n.update()
	v.update()
	return v
}

// turns (n a (v b c)) into (v (n a b) c), returns v
func rotateLeft(n *Node) *Node {
	v := n.right
	v.up = n.up
	n.right = v.left
	if nil != n.right {
		n.right.up = n
	}
	v.left = n
	n.up = v
	replaceChild(v.up, n, v)

	n.update()
	v.update()
	return v
}
