// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package state - typed accessors for values, maps and lists held in a
// storage.Store
//
// An accessor holds only its key material and codecs, every operation
// is given the store to act on.  Three query policies are provided for
// values and maps:
//
//   Value / Map                  absence is reported as a second result
//   DefaultValue / DefaultMap    absence resolves to a declared default
//   RequiredValue / RequiredMap  absence is a defect
//
// A defect (undecodable data, a missing required item, a hole inside a
// list) is logged critically and returned as a fault.RecordError class
// error.  Errors from the store are returned unchanged.
package state
