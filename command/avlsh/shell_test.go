// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/script"
)

const (
	dir      = "testing"
	category = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(dir)
	_ = os.Mkdir(dir, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

// scripted console
type fakeConsole struct {
	bytes.Buffer
	lines []string
}

func (f *fakeConsole) ReadLine() (string, error) {
	if 0 == len(f.lines) {
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func TestShellContinuesAfterError(t *testing.T) {
	tree := avl.New()
	c := &fakeConsole{
		lines: []string{"add 2 1", "bad", "add x", "list"},
	}
	in := script.New(tree, c, logger.New(category), true)

	shell(c, in, logger.New(category))

	expected := "add 2: true\n" +
		"add 1: true\n" +
		"error: unknown command: \"bad\"\n" +
		"error: key is not an integer: \"x\"\n" +
		"1 2\n"
	assert.Equal(t, expected, c.String(), "wrong session output")
}

func TestShellQuit(t *testing.T) {
	for _, quit := range []string{"quit", "EXIT", "  q  "} {
		tree := avl.New()
		c := &fakeConsole{
			lines: []string{"add 7", quit, "add 8"},
		}
		in := script.New(tree, c, logger.New(category), false)

		shell(c, in, logger.New(category))

		assert.Equal(t, []int{7}, tree.Keys(), "%q: statements after quit", quit)
		assert.Equal(t, 1, len(c.lines), "%q: input consumed after quit", quit)
	}
}
