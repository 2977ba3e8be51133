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
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrCodecNameMissing      = InvalidError("codec name is missing")
	ErrDatabaseVersion       = InvalidError("database version is not supported")
	ErrDecodeFailed          = RecordError("stored data does not decode as declared type")
	ErrDuplicateCodec        = ExistsError("codec name is already registered")
	ErrDuplicateItem         = ExistsError("storage item is already declared")
	ErrEmptyItemName         = InvalidError("storage item name is empty")
	ErrEmptyModuleName       = InvalidError("storage module name is empty")
	ErrInvalidBoolean        = InvalidError("invalid boolean encoding")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidCursor         = InvalidError("invalid cursor")
	ErrInvalidItemKind       = InvalidError("invalid storage item kind")
	ErrInvalidKeyLength      = LengthError("invalid key length")
	ErrInvalidLength         = LengthError("invalid length")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidModifier       = InvalidError("invalid storage item modifier")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidText           = InvalidError("invalid text value")
	ErrListElementMissing    = RecordError("list element missing inside list length")
	ErrMapKeyTypeMissing     = InvalidError("map key type is missing")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrReadOnly              = ProcessError("database is read only")
	ErrRequiredItemMissing   = RecordError("required storage item is missing")
	ErrStorageItemNotFound   = NotFoundError("storage item not found")
	ErrTrailingBytes         = LengthError("trailing bytes after value")
	ErrTransactionInUse      = ProcessError("transaction already in use")
	ErrTransactionNotStarted = ProcessError("transaction not started")
	ErrTruncatedValue        = LengthError("value is truncated")
	ErrUnknownCodec          = NotFoundError("unknown codec")
	ErrValueTooLarge         = LengthError("value is too large")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
//
// wrapped errors (fmt.Errorf with %w) are unwrapped to find the class
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool   { var t RecordError; return errors.As(e, &t) }
