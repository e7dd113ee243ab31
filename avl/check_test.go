// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/fault"
)

func TestCheckDetectsDamage(t *testing.T) {
	testCases := []struct {
		name   string
		damage func(tree *Tree)
	}{
		{"wrong parent", func(tree *Tree) { tree.root.left.up = tree.root.right }},
		{"root parent", func(tree *Tree) { tree.root.up = tree.root.left }},
		{"wrong height", func(tree *Tree) { tree.root.right.height = 5 }},
		{"wrong balance", func(tree *Tree) { tree.root.left.balance = 1 }},
		{"wrong count", func(tree *Tree) { tree.count += 1 }},
		{"wrong order", func(tree *Tree) { tree.root.left.key = 9 }},
	}

	for _, tc := range testCases {
		tree := NewFromSlice([]int{4, 2, 6, 1, 3, 5, 7})
		assert.Nil(t, tree.Check(), "%s: initial tree", tc.name)

		tc.damage(tree)
		err := tree.Check()
		assert.NotNil(t, err, "%s: not detected", tc.name)
		assert.True(t, fault.IsErrProcess(err), "%s: wrong class: %v", tc.name, err)
	}
}

func TestCheckUp(t *testing.T) {
	tree := NewFromSlice([]int{4, 2, 6})
	assert.True(t, tree.CheckUp(), "valid tree")

	tree.root.right.up = nil
	assert.False(t, tree.CheckUp(), "broken up pointer")
}

func TestRebalanceAfterRotationKeepsCache(t *testing.T) {
	tree := New()
	for key := 1; key <= 64; key += 1 {
		tree.Add(key)
		if !tree.CheckUp() {
			t.Fatalf("add %d: up pointers broken", key)
		}
	}
	// sequential inserts produce a perfect tree at 2^n - 1 nodes
	tree.Delete(64)
	assert.Equal(t, 5, tree.Height(), "height")
	assert.Equal(t, 0, tree.root.balance, "root balance")
	assert.Equal(t, 32, tree.root.key, "root key")
}
