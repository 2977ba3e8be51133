// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and os.getenv to extract environment supplied items.  The file must
// return a table which is mapped onto the caller's structure using the
// "gluamapper" field tags.
//
// The state tool configuration additionally declares the storage
// modules whose items it can read:
//
//   local M = {}
//   M.data_directory = "."
//   M.database = { directory = "data", name = "state.leveldb" }
//   M.modules = {
//       {
//           name = "Balances",
//           items = {
//               { name = "TotalIssuance", kind = "value", type = "u64", modifier = "default", default = "0" },
//               { name = "FreeBalance", kind = "map", key_type = "[32]byte", type = "u64" },
//           },
//       },
//   }
//   return M
package configuration
