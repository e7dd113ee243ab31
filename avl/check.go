// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlset/fault"
)

// Check - verify every structural invariant of the tree
//
// up pointers, key ordering, cached height and balance, the AVL bound
// and the node count
func (tree *Tree) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return fmt.Errorf("%w: root %d has parent %d", fault.ErrInconsistentTree, tree.root.key, tree.root.up.key)
	}
	n, _, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: count: %d  reachable nodes: %d", fault.ErrInconsistentTree, tree.count, n)
	}
	return nil
}

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: up pointer checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// internal: consistency checker, keys of p must lie strictly between
// low and high when those are set; returns node count and height
func check(p *Node, low *int, high *int) (int, int, error) {
	if nil == p {
		return 0, -1, nil
	}
	if nil != low && p.key <= *low {
		return 0, 0, fmt.Errorf("%w: key %d not greater than %d", fault.ErrInconsistentTree, p.key, *low)
	}
	if nil != high && p.key >= *high {
		return 0, 0, fmt.Errorf("%w: key %d not less than %d", fault.ErrInconsistentTree, p.key, *high)
	}
	if nil != p.left && p.left.up != p {
		return 0, 0, fmt.Errorf("%w: left child of %d has wrong parent", fault.ErrInconsistentTree, p.key)
	}
	if nil != p.right && p.right.up != p {
		return 0, 0, fmt.Errorf("%w: right child of %d has wrong parent", fault.ErrInconsistentTree, p.key)
	}

	key := p.key
	ln, lh, err := check(p.left, low, &key)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := check(p.right, &key, high)
	if nil != err {
		return 0, 0, err
	}

	h := lh + 1
	if rh > lh {
		h = rh + 1
	}
	b := rh - lh
	if h != p.height {
		return 0, 0, fmt.Errorf("%w: node %d height: %d  expected: %d", fault.ErrInconsistentTree, p.key, p.height, h)
	}
	if b != p.balance {
		return 0, 0, fmt.Errorf("%w: node %d balance: %d  expected: %d", fault.ErrInconsistentTree, p.key, p.balance, b)
	}
	if b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("%w: node %d unbalanced: %+d", fault.ErrInconsistentTree, p.key, b)
	}
	return ln + rn + 1, h, nil
}
