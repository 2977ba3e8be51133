// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/storageitems/schema"
	"github.com/bitmark-inc/storageitems/storage"
)

func getEnvironment(c *cli.Context) *environment {
	return c.App.Metadata["env"].(*environment)
}

func (env *environment) module(name string) (*schema.Catalog, error) {
	for _, catalog := range env.catalogs {
		if name == catalog.Name() {
			return catalog, nil
		}
	}
	return nil, ErrModuleNotFound
}

// the item selected by --module and --item
func selectedItem(c *cli.Context, env *environment) (*schema.Dynamic, error) {
	moduleName := c.String("module")
	if "" == moduleName {
		return nil, ErrRequiredArgument
	}
	itemName := c.String("item")
	if "" == itemName {
		return nil, ErrRequiredArgument
	}

	catalog, err := env.module(moduleName)
	if nil != err {
		return nil, err
	}
	return catalog.Item(itemName)
}

// the prefix from --prefix, or from --module/--item (and --key) if given
func selectedPrefix(c *cli.Context, env *environment) ([]byte, error) {
	if "" == c.String("item") {
		if "" != c.String("module") {
			catalog, err := env.module(c.String("module"))
			if nil != err {
				return nil, err
			}
			return []byte(catalog.Name() + " "), nil
		}
		return []byte(c.String("prefix")), nil
	}

	item, err := selectedItem(c, env)
	if nil != err {
		return nil, err
	}
	if "" == c.String("key") {
		return item.Prefix(), nil
	}
	return item.Key(c.String("key"))
}

// run f in a transaction, committing only if f succeeds
func (env *environment) update(f func(s storage.Store) error) error {
	trx, err := env.db.Begin()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		env.log.Errorf("update failed: %s", err)
		trx.Abort()
		return err
	}

	n := trx.Pending()
	err = trx.Commit()
	if nil != err {
		env.log.Errorf("commit failed: %s", err)
		return err
	}
	env.log.Infof("committed: %d keys", n)
	return nil
}
