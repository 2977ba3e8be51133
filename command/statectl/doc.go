// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// statectl - inspect and edit a state database through the storage
// modules declared in a Lua configuration file
//
//   statectl -c statectl.conf metadata
//   statectl -c statectl.conf get -m Balances -i FreeBalance -k 0x0101...
//   statectl -c statectl.conf set -m Balances -i TotalIssuance -v 42
//   statectl -c statectl.conf dump -m Balances -i FreeBalance
//   statectl -c statectl.conf digest
package main
