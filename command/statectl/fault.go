// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/storageitems/fault"
)

// common errors - keep in alphabetic order
const (
	ErrModuleNotFound   = fault.NotFoundError("storage module not found")
	ErrRequiredArgument = fault.InvalidError("required argument is missing")
	ErrTooManyArguments = fault.InvalidError("too many arguments")
)
