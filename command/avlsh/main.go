// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlsh - interactive shell over a single AVL tree
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/configuration"
	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/script"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "verify", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--version] [--verbose] [--verify] [--config-file=FILE] [KEY...]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := configuration.Load(configurationFile, filepath.Join(os.TempDir(), "avlsh"))
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}
	verbose := len(options["verbose"]) > 0
	verify := theConfiguration.Verify || len(options["verify"]) > 0

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %+v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	tree := avl.NewFromSlice(theConfiguration.Keys)

	// remaining arguments are additional initial keys
	if len(arguments) > 0 {
		keys, err := script.ParseKeys(arguments)
		if nil != err {
			exitwithstatus.Message("%s: initial keys error: %s", program, err)
		}
		for _, key := range keys {
			tree.Add(key)
		}
	}

	ttyFd, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if nil != err {
		exitwithstatus.Message("%s: tty open error: %s", program, err)
	}
	defer ttyFd.Close()

	oldState, err := terminal.MakeRaw(int(ttyFd.Fd()))
	if nil != err {
		exitwithstatus.Message("%s: tty open error: %s", program, err)
	}
	defer terminal.Restore(int(ttyFd.Fd()), oldState)

	console := terminal.NewTerminal(ttyFd, theConfiguration.Prompt)
	interpreter := script.New(tree, console, logger.New("script"), verify)

	if verbose {
		fmt.Fprintf(console, "%s %s: %d keys, type help for statements\n", program, version, tree.Size())
	}

	shell(console, interpreter, log)

	statements, failures := interpreter.Statistics()
	log.Infof("statements: %d  failures: %d  final size: %d", statements, failures, tree.Size())
}
