// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the flat byte keyed store beneath typed storage items
//
// The state is a single LevelDB keyspace.  Typed items (see package
// state) compute their own physical keys; this package only moves
// bytes and never interprets them.
//
// Notes:
// 1. ++           = concatenation of byte data
// 2. module       = the namespace name of a storage module (ASCII)
// 3. item         = the declared name of a storage item (ASCII)
// 4. index        = list position as big endian uint32 (4 bytes)
// 5. encode(k)    = self-delimiting codec encoding of a map key
//
// Values:
//
//   module ++ " " ++ item             - value item (or an explicit key)
//
// Maps:
//
//   module ++ " " ++ item ++ encode(k) - one entry per logical key
//
// Lists:
//
//   prefix ++ "len"                   - current length as big endian uint32
//   prefix ++ index                   - element for every index in [0, length)
//
// Housekeeping:
//
//   0x00 ++ "VERSION"                 - database format version (big endian uint32)
//
// A Database allows at most one open Transaction.  All accessor calls of
// one state transition run against that transaction; its reads observe
// its own uncommitted writes and deletes.
package storage
