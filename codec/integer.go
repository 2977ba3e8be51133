// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"

	"github.com/bitmark-inc/storageitems/fault"
)

// fixed width integer codecs
var (
	U8   Codec[uint8]  = u8Codec{}
	U16  Codec[uint16] = u16Codec{}
	U32  Codec[uint32] = u32Codec{}
	U64  Codec[uint64] = u64Codec{}
	Bool Codec[bool]   = boolCodec{}
)

type u8Codec struct{}

func (u8Codec) Name() string { return "u8" }

func (u8Codec) Append(buffer []byte, value uint8) []byte {
	return append(buffer, value)
}

func (u8Codec) DecodePrefix(buffer []byte) (uint8, int, error) {
	if len(buffer) < 1 {
		return 0, 0, fault.ErrTruncatedValue
	}
	return buffer[0], 1, nil
}

type u16Codec struct{}

func (u16Codec) Name() string { return "u16" }

func (u16Codec) Append(buffer []byte, value uint16) []byte {
	return append(buffer, byte(value>>8), byte(value))
}

func (u16Codec) DecodePrefix(buffer []byte) (uint16, int, error) {
	if len(buffer) < 2 {
		return 0, 0, fault.ErrTruncatedValue
	}
	return binary.BigEndian.Uint16(buffer), 2, nil
}

type u32Codec struct{}

func (u32Codec) Name() string { return "u32" }

func (u32Codec) Append(buffer []byte, value uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

func (u32Codec) DecodePrefix(buffer []byte) (uint32, int, error) {
	if len(buffer) < 4 {
		return 0, 0, fault.ErrTruncatedValue
	}
	return binary.BigEndian.Uint32(buffer), 4, nil
}

type u64Codec struct{}

func (u64Codec) Name() string { return "u64" }

func (u64Codec) Append(buffer []byte, value uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

func (u64Codec) DecodePrefix(buffer []byte) (uint64, int, error) {
	if len(buffer) < 8 {
		return 0, 0, fault.ErrTruncatedValue
	}
	return binary.BigEndian.Uint64(buffer), 8, nil
}

type boolCodec struct{}

func (boolCodec) Name() string { return "bool" }

func (boolCodec) Append(buffer []byte, value bool) []byte {
	if value {
		return append(buffer, 0x01)
	}
	return append(buffer, 0x00)
}

func (boolCodec) DecodePrefix(buffer []byte) (bool, int, error) {
	if len(buffer) < 1 {
		return false, 0, fault.ErrTruncatedValue
	}
	switch buffer[0] {
	case 0x00:
		return false, 1, nil
	case 0x01:
		return true, 1, nil
	default:
		return false, 0, fault.ErrInvalidBoolean
	}
}
