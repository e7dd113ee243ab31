// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/script"
)

// line input with echo output, satisfied by *terminal.Terminal
type console interface {
	io.Writer
	ReadLine() (string, error)
}

// read and execute statements until quit, exit or end of input
//
// statement errors are reported and the session continues
func shell(c console, in *script.Interpreter, log *logger.L) {

loop:
	for {
		line, err := c.ReadLine()
		if io.EOF == err {
			break loop
		}
		if nil != err {
			log.Errorf("terminal read error: %s", err)
			break loop
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "quit", "exit", "q":
			break loop
		}

		if err := in.Execute(line); nil != err {
			fmt.Fprintf(c, "error: %s\n", err)
		}
	}
}
