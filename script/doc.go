// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - execute text statements against an ordered integer set
//
// one statement per line, words separated by white space, a '#'
// starts a comment.  Statement names are case insensitive:
//
//   add K...         insert keys
//   delete K...      remove keys (also: del, remove)
//   contains K...    depth of each key or -1 (also: depth)
//   size             number of keys
//   height           height of the tree, -1 when empty
//   list             keys in ascending order
//   print            ASCII drawing of the tree
//   check            verify the tree structure
//   min-nodes H...   fewest nodes for an AVL tree of height H
//   help             statement summary
package script
