// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type DecodeError GenericError
type FatalError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBatchDone             = ProcessError("batch is already closed")
	ErrBatchMismatch         = InvalidError("batch belongs to a different engine")
	ErrDatabaseClosed        = ProcessError("database is closed")
	ErrEmptySortedValue      = InvalidError("sorted value must not be empty")
	ErrInvalidBackend        = InvalidError("invalid storage backend")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyLength             = InvalidError("key length is invalid")
	ErrMissingPath           = InvalidError("database path is required")
	ErrNotCompactable        = InvalidError("backend does not support compaction")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotFoundKey           = NotFoundError("key not found")
	ErrPartitionOverflow     = FatalError("partition index overflow")
	ErrTruncatedData         = DecodeError("truncated data")
	ErrUnknownConfigFileType = InvalidError("unknown config file type")
	ErrUnsupportedType       = InvalidError("unsupported type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e DecodeError) Error() string   { return string(e) }
func (e FatalError) Error() string    { return string(e) }

// Fatalf - create a fatal error carrying engine diagnostic text
func Fatalf(format string, arguments ...interface{}) error {
	return FatalError(fmt.Sprintf(format, arguments...))
}

// Decodef - create a decode error with a detail message
func Decodef(format string, arguments ...interface{}) error {
	return DecodeError(fmt.Sprintf(format, arguments...))
}

// determine the class of an error, wrapped errors are unwrapped
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrDecode(e error) bool   { var t DecodeError; return errors.As(e, &t) }
func IsErrFatal(e error) bool    { var t FatalError; return errors.As(e, &t) }
