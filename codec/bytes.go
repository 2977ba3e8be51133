// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"fmt"

	"github.com/bitmark-inc/storageitems/fault"
)

// variable and fixed length byte codecs
var (
	Bytes   Codec[[]byte]   = bytesCodec{}
	String  Codec[string]   = stringCodec{}
	Array32 Codec[[32]byte] = array32Codec{}
)

type bytesCodec struct{}

func (bytesCodec) Name() string { return "bytes" }

func (bytesCodec) Append(buffer []byte, value []byte) []byte {
	buffer = AppendVarint64(buffer, uint64(len(value)))
	return append(buffer, value...)
}

func (bytesCodec) DecodePrefix(buffer []byte) ([]byte, int, error) {
	length, n, err := readLength(buffer)
	if nil != err {
		return nil, 0, err
	}
	value := make([]byte, length)
	copy(value, buffer[n:n+length])
	return value, n + length, nil
}

type stringCodec struct{}

func (stringCodec) Name() string { return "string" }

func (stringCodec) Append(buffer []byte, value string) []byte {
	buffer = AppendVarint64(buffer, uint64(len(value)))
	return append(buffer, value...)
}

func (stringCodec) DecodePrefix(buffer []byte) (string, int, error) {
	length, n, err := readLength(buffer)
	if nil != err {
		return "", 0, err
	}
	return string(buffer[n : n+length]), n + length, nil
}

type array32Codec struct{}

func (array32Codec) Name() string { return "[32]byte" }

func (array32Codec) Append(buffer []byte, value [32]byte) []byte {
	return append(buffer, value[:]...)
}

func (array32Codec) DecodePrefix(buffer []byte) ([32]byte, int, error) {
	var value [32]byte
	if len(buffer) < len(value) {
		return value, 0, fault.ErrTruncatedValue
	}
	copy(value[:], buffer)
	return value, len(value), nil
}

// Fixed - a byte slice that is always exactly size bytes long
//
// Append panics on a wrong sized value since that can only be a
// programming error
func Fixed(size int) Codec[[]byte] {
	return fixedCodec(size)
}

type fixedCodec int

func (f fixedCodec) Name() string { return fmt.Sprintf("[%d]byte", int(f)) }

func (f fixedCodec) Append(buffer []byte, value []byte) []byte {
	if len(value) != int(f) {
		fault.Panicf("fixed codec: size: %d  value length: %d", int(f), len(value))
	}
	return append(buffer, value...)
}

func (f fixedCodec) DecodePrefix(buffer []byte) ([]byte, int, error) {
	size := int(f)
	if len(buffer) < size {
		return nil, 0, fault.ErrTruncatedValue
	}
	value := make([]byte, size)
	copy(value, buffer)
	return value, size, nil
}
