// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package schema - declare the storage items of a module
//
// A Module is a namespace.  Each constructor derives the item's key
// (or key prefix) as:
//
//   namespace ++ " " ++ name
//
// unless an explicit Key option is given, and appends the item's
// description to the module metadata.  Items therefore appear in the
// metadata in the order they were declared.
//
//   balances := schema.NewModule("Balances")
//   total := schema.DefaultValue(balances, "TotalIssuance", codec.U64, 0,
//       schema.Doc(" total tokens in existence"))
//   free := schema.Map(balances, "FreeBalance", codec.Array32, codec.U64)
//
// Declaring an item twice or with an empty name is a programming error
// and panics.  Build constructs a module from a table of Declarations
// (e.g. read from a configuration file) returning errors instead.
package schema
