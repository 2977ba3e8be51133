// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/storageitems/storage"
)

func runKey(c *cli.Context) error {

	env := getEnvironment(c)

	item, err := selectedItem(c, env)
	if nil != err {
		return err
	}

	key, err := item.Key(c.String("key"))
	if nil != err {
		return err
	}

	fmt.Fprintf(env.w, "%s\n", hex.EncodeToString(key))
	return nil
}

func runGet(c *cli.Context) error {

	env := getEnvironment(c)

	item, err := selectedItem(c, env)
	if nil != err {
		return err
	}

	text, found, err := item.Get(env.db, c.String("key"))
	if nil != err {
		return err
	}
	if !found {
		if env.verbose {
			fmt.Fprintf(env.e, "item: %s  key: %q  is not set\n", item.Name(), c.String("key"))
		}
		return nil
	}

	fmt.Fprintf(env.w, "%s\n", text)
	return nil
}

func runSet(c *cli.Context) error {

	env := getEnvironment(c)

	item, err := selectedItem(c, env)
	if nil != err {
		return err
	}

	if !c.IsSet("value") {
		return ErrRequiredArgument
	}
	key := c.String("key")
	value := c.String("value")

	env.log.Infof("set: %s  key: %q  value: %q", item.Name(), key, value)

	return env.update(func(s storage.Store) error {
		return item.Set(s, key, value)
	})
}

func runDelete(c *cli.Context) error {

	env := getEnvironment(c)

	item, err := selectedItem(c, env)
	if nil != err {
		return err
	}

	key := c.String("key")
	env.log.Infof("delete: %s  key: %q", item.Name(), key)

	return env.update(func(s storage.Store) error {
		return item.Delete(s, key)
	})
}
