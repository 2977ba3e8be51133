// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/bitmark-inc/storageitems/fault"
)

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// AppendVarint64 - append the Varint64 form of value to buffer
func AppendVarint64(buffer []byte, value uint64) []byte {
	if value < 0x80 {
		return append(buffer, byte(value))
	}

	for i := 0; i < Varint64MaximumBytes && value != 0; i += 1 {
		ext := uint64(0x80)
		if value < 0x80 {
			ext = 0x00
		}
		buffer = append(buffer, byte(value|ext))
		value >>= 7
	}
	return buffer
}

// ReadVarint64 - decode a Varint64 from the start of buffer
//
// also returns the number of bytes used
func ReadVarint64(buffer []byte) (uint64, int, error) {
	result := uint64(0)
	shift := uint(0)

	for count := 0; count < len(buffer); shift += 7 {
		currentByte := uint64(buffer[count])
		count += 1
		if count == Varint64MaximumBytes {
			return result | currentByte<<shift, count, nil
		}
		result |= currentByte & 0x7f << shift
		if 0 == currentByte&0x80 {
			// reject padded forms so each value has exactly one encoding
			if count > 1 && 0 == currentByte {
				return 0, 0, fault.ErrInvalidLength
			}
			return result, count, nil
		}
	}
	return 0, 0, fault.ErrTruncatedValue
}

// read a Varint64 length and check the following data is present
func readLength(buffer []byte) (int, int, error) {
	length, n, err := ReadVarint64(buffer)
	if nil != err {
		return 0, 0, err
	}
	if length > uint64(len(buffer)-n) {
		return 0, 0, fault.ErrTruncatedValue
	}
	return int(length), n, nil
}
