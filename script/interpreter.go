// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/counter"
	"github.com/bitmark-inc/avlset/fault"
)

//go:generate mockgen -destination=mocks/mock_set.go -package=mocks github.com/bitmark-inc/avlset/script Set

// Set - operations the interpreter needs from a tree
type Set interface {
	Add(key int) bool
	Delete(key int) bool
	Contains(key int) int
	Size() int
	Height() int
	Walk(fn func(key int) bool)
	Print(w io.Writer) int
	Check() error
}

// Interpreter - runs statements against a set and writes the results
type Interpreter struct {
	set    Set
	out    io.Writer
	log    *logger.L
	verify bool

	statements counter.Counter
	failures   counter.Counter
}

// New - create an interpreter
//
// log must be a valid channel; if verify is set the set is checked
// after every successful mutation
func New(set Set, out io.Writer, log *logger.L, verify bool) *Interpreter {
	return &Interpreter{
		set:    set,
		out:    out,
		log:    log,
		verify: verify,
	}
}

// Execute - run a single statement
//
// blank lines and comments do nothing
func (in *Interpreter) Execute(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	words := strings.Fields(line)
	if 0 == len(words) {
		return nil
	}

	name := strings.ToLower(words[0])
	in.log.Debugf("statement: %s  arguments: %v", name, words[1:])
	in.statements.Increment()

	s, ok := statements[name]
	if !ok {
		in.failures.Increment()
		in.log.Warnf("unknown statement: %q", words[0])
		return fmt.Errorf("%w: %q", fault.ErrUnknownCommand, words[0])
	}
	if s.minimumArguments > len(words)-1 {
		in.failures.Increment()
		return fmt.Errorf("%w: %s", fault.ErrMissingArgument, s.usage)
	}

	if err := s.action(in, words[1:]); nil != err {
		in.failures.Increment()
		in.log.Errorf("%s: error: %s", name, err)
		return err
	}
	return nil
}

// Run - execute each line of r in order, stopping at the first error
func (in *Interpreter) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		if err := in.Execute(scanner.Text()); nil != err {
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}
	return scanner.Err()
}

// Statistics - number of statements run and how many failed
func (in *Interpreter) Statistics() (uint64, uint64) {
	return in.statements.Uint64(), in.failures.Uint64()
}

// called after each successful mutation
func (in *Interpreter) verifySet(statement string, key int) error {
	if !in.verify {
		return nil
	}
	if err := in.set.Check(); nil != err {
		fault.Criticalf("check failed after %s %d: %s", statement, key, err)
		return err
	}
	in.log.Tracef("check passed after %s %d", statement, key)
	return nil
}
