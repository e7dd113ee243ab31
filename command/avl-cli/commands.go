// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/script"
)

func runExec(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == len(c.Args()) {
		return fmt.Errorf("%w: no statements", fault.ErrMissingArgument)
	}
	return execute(m.interpreter, c.Args())
}

func runScripts(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == len(c.Args()) {
		return fmt.Errorf("%w: no script files", fault.ErrMissingArgument)
	}
	return runFiles(m.interpreter, c.Args(), os.Stdin)
}

func runMinNodes(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == len(c.Args()) {
		return fmt.Errorf("%w: no heights", fault.ErrMissingArgument)
	}
	return m.interpreter.Execute("min-nodes " + strings.Join(c.Args(), " "))
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}

// each statement is a separate argument
func execute(in *script.Interpreter, statements []string) error {
	for i, s := range statements {
		if err := in.Execute(s); nil != err {
			return fmt.Errorf("statement %d: %q: %w", i+1, s, err)
		}
	}
	return nil
}

// "-" is read from stdin
func runFiles(in *script.Interpreter, names []string, stdin io.Reader) error {
	for _, name := range names {
		if "-" == name {
			if err := in.Run(stdin); nil != err {
				return fmt.Errorf("stdin: %w", err)
			}
			continue
		}

		f, err := os.Open(name)
		if nil != err {
			return err
		}
		err = in.Run(f)
		f.Close()
		if nil != err {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
