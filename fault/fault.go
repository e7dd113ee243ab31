// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type UnsupportedError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrInconsistentTree     = ProcessError("inconsistent tree")
	ErrInvalidHeight        = InvalidError("height must not be negative")
	ErrInvalidKey           = InvalidError("key is not an integer")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrNoMoreElements       = NotFoundError("no more elements")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrRemoveNotSupported   = UnsupportedError("remove is not supported")
	ErrTreeModified         = ProcessError("tree modified during iteration")
	ErrUnknownCommand       = InvalidError("unknown command")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string      { return string(e) }
func (e InvalidError) Error() string     { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e ProcessError) Error() string     { return string(e) }
func (e UnsupportedError) Error() string { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool      { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool     { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool    { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool     { var t ProcessError; return errors.As(e, &t) }
func IsErrUnsupported(e error) bool { var t UnsupportedError; return errors.As(e, &t) }
