// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - deterministic binary encodings for storage items
//
// Every codec is self-delimiting: DecodePrefix reports how many bytes
// of the buffer the value occupied.  This is what makes a map key
// suffix unambiguous when it is appended to a fixed prefix, and what
// allows values to be concatenated inside a Sequence.
//
// Encodings:
//
//   u8, u16, u32, u64 - fixed width big endian (1, 2, 4, 8 bytes)
//   bool              - one byte 0x00 or 0x01
//   bytes, string     - Varint64(length) ++ data
//   [32]byte          - 32 bytes
//   [n]byte           - n bytes (Fixed)
//   sequence          - Varint64(count) ++ (concat elements)
//   proto messages    - Varint64(length) ++ deterministic protobuf
//
// Varint64:
//
//   byte 1:  ext | B06 | B05 | B04 | B03 | B02 | B01 | B00
//   byte 2:  ext | B13 | B12 | B11 | B10 | B09 | B08 | B07
//   ...
//   byte 9:  B63 | B62 | B61 | B60 | B59 | B58 | B57 | B56
package codec
