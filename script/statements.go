// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

type statement struct {
	names            []string
	usage            string
	description      string
	minimumArguments int
	action           func(in *Interpreter, arguments []string) error
}

// ordered for help, filled by init to break the reference from help
var statementList []statement

// name and alias lookup
var statements = map[string]*statement{}

func init() {
	statementList = []statement{
		{
			names:            []string{"add"},
			usage:            "add KEY...",
			description:      "insert keys, true if the key was not already present",
			minimumArguments: 1,
			action:           runAdd,
		},
		{
			names:            []string{"delete", "del", "remove"},
			usage:            "delete KEY...",
			description:      "remove keys, true if the key was present",
			minimumArguments: 1,
			action:           runDelete,
		},
		{
			names:            []string{"contains", "depth"},
			usage:            "contains KEY...",
			description:      "depth of each key, 0 for the root, -1 if absent",
			minimumArguments: 1,
			action:           runContains,
		},
		{
			names:       []string{"size"},
			usage:       "size",
			description: "number of keys",
			action:      runSize,
		},
		{
			names:       []string{"height"},
			usage:       "height",
			description: "height of the tree, -1 if empty",
			action:      runHeight,
		},
		{
			names:       []string{"list"},
			usage:       "list",
			description: "all keys in ascending order",
			action:      runList,
		},
		{
			names:       []string{"print"},
			usage:       "print",
			description: "draw the tree, right sub-tree above",
			action:      runPrint,
		},
		{
			names:       []string{"check"},
			usage:       "check",
			description: "verify links, ordering, heights and balance",
			action:      runCheck,
		},
		{
			names:            []string{"min-nodes"},
			usage:            "min-nodes HEIGHT...",
			description:      "fewest nodes an AVL tree of each height can hold, 0 <= HEIGHT <= " + strconv.Itoa(avl.MaxHeight),
			minimumArguments: 1,
			action:           runMinNodes,
		},
		{
			names:       []string{"help"},
			usage:       "help",
			description: "this summary",
			action:      runHelp,
		},
	}
	for i := range statementList {
		s := &statementList[i]
		for _, name := range s.names {
			statements[name] = s
		}
	}
}

// ParseKeys - convert decimal strings to keys, fails on the first
// invalid one
func ParseKeys(arguments []string) ([]int, error) {
	keys := make([]int, len(arguments))
	for i, a := range arguments {
		k, err := strconv.Atoi(a)
		if nil != err {
			return nil, fmt.Errorf("%w: %q", fault.ErrInvalidKey, a)
		}
		keys[i] = k
	}
	return keys, nil
}

func runAdd(in *Interpreter, arguments []string) error {
	keys, err := ParseKeys(arguments)
	if nil != err {
		return err
	}
	for _, key := range keys {
		added := in.set.Add(key)
		fmt.Fprintf(in.out, "add %d: %t\n", key, added)
		in.log.Infof("add %d: %t  size: %d", key, added, in.set.Size())
		if added {
			if err := in.verifySet("add", key); nil != err {
				return err
			}
		}
	}
	return nil
}

func runDelete(in *Interpreter, arguments []string) error {
	keys, err := ParseKeys(arguments)
	if nil != err {
		return err
	}
	for _, key := range keys {
		deleted := in.set.Delete(key)
		fmt.Fprintf(in.out, "delete %d: %t\n", key, deleted)
		in.log.Infof("delete %d: %t  size: %d", key, deleted, in.set.Size())
		if deleted {
			if err := in.verifySet("delete", key); nil != err {
				return err
			}
		}
	}
	return nil
}

func runContains(in *Interpreter, arguments []string) error {
	keys, err := ParseKeys(arguments)
	if nil != err {
		return err
	}
	for _, key := range keys {
		fmt.Fprintf(in.out, "contains %d: %d\n", key, in.set.Contains(key))
	}
	return nil
}

func runSize(in *Interpreter, arguments []string) error {
	fmt.Fprintf(in.out, "size: %d\n", in.set.Size())
	return nil
}

func runHeight(in *Interpreter, arguments []string) error {
	fmt.Fprintf(in.out, "height: %d\n", in.set.Height())
	return nil
}

func runList(in *Interpreter, arguments []string) error {
	keys := make([]string, 0, in.set.Size())
	in.set.Walk(func(key int) bool {
		keys = append(keys, strconv.Itoa(key))
		return true
	})
	fmt.Fprintf(in.out, "%s\n", strings.Join(keys, " "))
	return nil
}

func runPrint(in *Interpreter, arguments []string) error {
	if 0 == in.set.Print(in.out) {
		fmt.Fprintf(in.out, "(empty)\n")
	}
	return nil
}

func runCheck(in *Interpreter, arguments []string) error {
	if err := in.set.Check(); nil != err {
		return err
	}
	fmt.Fprintf(in.out, "ok\n")
	return nil
}

func runMinNodes(in *Interpreter, arguments []string) error {
	heights := make([]int, len(arguments))
	for i, a := range arguments {
		h, err := strconv.Atoi(a)
		if nil != err || h < 0 || h > avl.MaxHeight {
			return fmt.Errorf("%w: %q", fault.ErrInvalidHeight, a)
		}
		heights[i] = h
	}
	for _, h := range heights {
		fmt.Fprintf(in.out, "min-nodes %d: %d\n", h, avl.MinNodesForHeight(h))
	}
	return nil
}

func runHelp(in *Interpreter, arguments []string) error {
	for _, s := range statementList {
		aliases := ""
		if len(s.names) > 1 {
			aliases = " (also: " + strings.Join(s.names[1:], ", ") + ")"
		}
		fmt.Fprintf(in.out, "  %-20s %s%s\n", s.usage, s.description, aliases)
	}
	return nil
}
