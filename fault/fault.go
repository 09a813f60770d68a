// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ProcessError("already initialised")
	ErrArgumentCount         = InvalidError("wrong number of arguments")
	ErrBalanceOutOfRange     = ProcessError("balance factor out of range")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCountMismatch         = ProcessError("item count does not match node count")
	ErrHeightMismatch        = ProcessError("cached height does not match subtree")
	ErrInvalidDirectory      = InvalidError("invalid directory")
	ErrInvalidFileName       = InvalidError("invalid file name")
	ErrInvalidKey            = InvalidError("invalid key")
	ErrInvalidKeyType        = InvalidError("invalid key type")
	ErrInvalidLoggerChannel  = ProcessError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrItemNotFound          = NotFoundError("item not found")
	ErrNilItem               = InvalidError("item is nil")
	ErrNilList               = InvalidError("item list is nil")
	ErrOrderViolation        = ProcessError("items are not in strictly increasing order")
	ErrUnknownCommand        = InvalidError("unknown command")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
