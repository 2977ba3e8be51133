// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/bitmark-inc/storageitems/fault"
)

// Codec - encode and decode one Go type
type Codec[T any] interface {
	// type name as shown in metadata
	Name() string

	// append the encoding of value to buffer and return the extended buffer
	Append(buffer []byte, value T) []byte

	// decode a value from the start of buffer
	// returning the number of bytes consumed
	DecodePrefix(buffer []byte) (T, int, error)
}

// Encode - the complete encoding of a single value
func Encode[T any](c Codec[T], value T) []byte {
	return c.Append(nil, value)
}

// Decode - decode a buffer that must hold exactly one value
func Decode[T any](c Codec[T], buffer []byte) (T, error) {
	value, n, err := c.DecodePrefix(buffer)
	if nil != err {
		var zero T
		return zero, err
	}
	if n != len(buffer) {
		var zero T
		return zero, fault.ErrTrailingBytes
	}
	return value, nil
}
