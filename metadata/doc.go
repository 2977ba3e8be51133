// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metadata - description of declared storage items for
// introspection tools
//
// The description is never consulted by the accessors.  A schema
// produces exactly one Function per declared item in declaration
// order.  JSON form:
//
//   {
//     "prefix": "Balances",
//     "functions": [
//       {
//         "name": "TotalIssuance",
//         "modifier": "Default",
//         "type": {"plain": "u64"},
//         "documentation": [" total tokens in existence"]
//       },
//       {
//         "name": "FreeBalance",
//         "modifier": "None",
//         "type": {"map": {"key": "[32]byte", "value": "u64"}},
//         "documentation": []
//       }
//     ]
//   }
package metadata
