// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/configuration"
	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/script"
)

type metadata struct {
	config      *configuration.Configuration
	tree        *avl.Tree
	interpreter *script.Interpreter
	log         *logger.L
	verbose     bool
	verify      bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// logging is initialised by Before and finalised by After
func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "run statements against an AVL tree of integer keys"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "verify",
			Usage: " check the tree structure after every change",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "exec",
			Usage:     "execute each argument as a statement",
			ArgsUsage: "STATEMENT...",
			Action:    runExec,

			// statements such as "add -4" are not flags
			SkipFlagParsing: true,
		},
		{
			Name:      "run",
			Usage:     "execute script files in order, - reads standard input",
			ArgsUsage: "FILE...",
			Action:    runScripts,
		},
		{
			Name:      "min-nodes",
			Usage:     "fewest nodes an AVL tree of each height can hold",
			ArgsUsage: "HEIGHT...",
			Action:    runMinNodes,

			SkipFlagParsing: true,
		},
		{
			Name:   "version",
			Usage:  "display avl-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		file := c.GlobalString("config-file")
		if verbose && "" != file {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.Load(file, filepath.Join(os.TempDir(), app.Name))
		if nil != err {
			return err
		}
		if verbose {
			config.Logging.Console = true
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			logger.Finalise()
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s", version)
		log.Debugf("configuration: %+v", config)

		tree := avl.NewFromSlice(config.Keys)
		verify := config.Verify || c.GlobalBool("verify")
		log.Infof("keys: %d  verify: %t", len(config.Keys), verify)

		c.App.Metadata["config"] = &metadata{
			config:      config,
			tree:        tree,
			interpreter: script.New(tree, w, logger.New("script"), verify),
			log:         log,
			verbose:     verbose,
			verify:      verify,
			e:           e,
			w:           w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}

		statements, failures := m.interpreter.Statistics()
		m.log.Infof("statements: %d  failures: %d  final size: %d", statements, failures, m.tree.Size())
		if m.verbose {
			fmt.Fprintf(m.e, "statements: %d  failures: %d\n", statements, failures)
		}

		fault.Finalise()
		logger.Finalise()
		return nil
	}

	return app
}
