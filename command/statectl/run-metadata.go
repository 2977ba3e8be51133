// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/storageitems/metadata"
)

func runMetadata(c *cli.Context) error {

	env := getEnvironment(c)

	if c.NArg() > 1 {
		return ErrTooManyArguments
	}

	if 1 == c.NArg() {
		catalog, err := env.module(c.Args().Get(0))
		if nil != err {
			return err
		}
		return printJSON(env.w, catalog.Metadata())
	}

	all := make([]metadata.Storage, 0, len(env.catalogs))
	for _, catalog := range env.catalogs {
		all = append(all, catalog.Metadata())
	}
	return printJSON(env.w, all)
}
