// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

func TestIteratorEmpty(t *testing.T) {
	it := avl.New().Iterator()
	assert.False(t, it.HasNext(), "empty tree has next")

	_, err := it.Next()
	assert.Equal(t, fault.ErrNoMoreElements, err, "wrong error")
	assert.True(t, fault.IsErrNotFound(err), "wrong error class")
}

func TestIteratorAscending(t *testing.T) {
	tree := avl.NewFromSlice([]int{50, 20, 80, 10, 30, 70, 90, 60})
	it := tree.Iterator()

	keys := []int{}
	for it.HasNext() {
		key, err := it.Next()
		assert.Nil(t, err, "next")
		keys = append(keys, key)
	}
	assert.Equal(t, []int{10, 20, 30, 50, 60, 70, 80, 90}, keys, "wrong order")

	_, err := it.Next()
	assert.Equal(t, fault.ErrNoMoreElements, err, "exhausted iterator")

	// the iterator does not restart
	assert.False(t, it.HasNext(), "restarted")
}

func TestIteratorRemove(t *testing.T) {
	tree := avl.NewFromSlice([]int{1, 2})
	it := tree.Iterator()

	err := it.Remove()
	assert.Equal(t, fault.ErrRemoveNotSupported, err, "wrong error")
	assert.True(t, fault.IsErrUnsupported(err), "wrong error class")
	assert.Equal(t, 2, tree.Size(), "tree modified")

	key, err := it.Next()
	assert.Nil(t, err, "iterator invalidated by remove")
	assert.Equal(t, 1, key, "wrong key")
}

func TestIteratorModified(t *testing.T) {
	tree := avl.NewFromSlice([]int{1, 2, 3})
	it := tree.Iterator()

	key, err := it.Next()
	assert.Nil(t, err)
	assert.Equal(t, 1, key)

	// unchanged tree keeps the iterator valid
	assert.False(t, tree.Add(2), "duplicate added")
	assert.False(t, tree.Delete(99), "absent key deleted")
	key, err = it.Next()
	assert.Nil(t, err, "no-op mutation invalidated iterator")
	assert.Equal(t, 2, key)

	assert.True(t, tree.Add(100), "add")
	_, err = it.Next()
	assert.Equal(t, fault.ErrTreeModified, err, "modification not detected")
	assert.True(t, fault.IsErrProcess(err), "wrong error class")

	it = tree.Iterator()
	assert.True(t, tree.Delete(1), "delete")
	_, err = it.Next()
	assert.Equal(t, fault.ErrTreeModified, err, "delete not detected")
}
