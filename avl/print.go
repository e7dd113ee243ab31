// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// the right sub-tree is drawn above its parent, returns the number of
// levels in the tree
func (tree *Tree) Print(w io.Writer) int {
	return printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if nil != tree.up {
		fmt.Fprintf(w, "%d ^%d %+2d/%d\n", tree.key, tree.up.key, tree.balance, tree.height)
	} else {
		fmt.Fprintf(w, "%d ^- %+2d/%d\n", tree.key, tree.balance, tree.height)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
