// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of integer keys with the addition
// of parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree and its balance
// (height of right minus height of left).  After every insert or
// delete the path from the changed node to the root is walked upwards
// recomputing these values and rotating any node whose balance has
// reached ±2.
//
// Delete of a node with two children copies the in-order successor's
// key into the node and then unlinks the successor node, so a key
// does not stay attached to the same node for its whole lifetime.
package avl
