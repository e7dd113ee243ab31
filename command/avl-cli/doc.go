// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-cli - run tree statements from the command line or script files
//
//   avl-cli [--config-file FILE] [--verify] exec 'add 5 3 8' 'print'
//   avl-cli run build.avl -
//   avl-cli min-nodes 0 1 2 3
//
// the tree starts with the keys from the configuration file and is
// discarded when the program exits
package main
