// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/storageitems/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "hex", HasArg: getoptions.NO_ARGUMENT, Short: 'x'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) < 2 {
		exitwithstatus.Message("usage: %s [--help] [--hex] leveldb-directory prefix [count]", program)
	}

	database := arguments[0]

	prefix := []byte(arguments[1])
	if len(options["hex"]) > 0 {
		prefix, err = hex.DecodeString(strings.TrimPrefix(arguments[1], "0x"))
		if err != nil {
			exitwithstatus.Message("%s: decode prefix error: %s", program, err)
		}
	}

	count := 100
	if len(arguments) > 2 {
		count, err = strconv.Atoi(arguments[2])
		if err != nil {
			exitwithstatus.Message("%s: invalid count: %q", program, arguments[2])
		}
	}

	if _, err := os.Stat(database); err != nil {
		exitwithstatus.Message("%s: missing database: %q", program, database)
	}

	db, err := storage.Open(database, storage.ReadOnly)
	if err != nil {
		exitwithstatus.Message("%s: open error: %s", program, err)
	}
	defer db.Close()

	// dump the items as hex
	data, err := storage.NewCursor(db, prefix).Fetch(count)
	if err != nil {
		exitwithstatus.Message("%s: fetch error: %s", program, err)
	}
	for i, e := range data {
		fmt.Printf("%d: Key: %x\n", i, e.Key)
		fmt.Printf("%d: Val: %x\n", i, e.Value)
	}
}
