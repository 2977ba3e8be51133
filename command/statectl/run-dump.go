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

type dumpElement struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type dumpReply struct {
	Prefix   string        `json:"prefix"`
	Elements []dumpElement `json:"elements"`
}

func runDump(c *cli.Context) error {

	env := getEnvironment(c)

	prefix, err := selectedPrefix(c, env)
	if nil != err {
		return err
	}

	elements, err := storage.NewCursor(env.db, prefix).Fetch(c.Int("count"))
	if nil != err {
		return err
	}

	reply := dumpReply{
		Prefix:   hex.EncodeToString(prefix),
		Elements: make([]dumpElement, len(elements)),
	}
	for i, e := range elements {
		reply.Elements[i] = dumpElement{
			Key:   hex.EncodeToString(e.Key),
			Value: hex.EncodeToString(e.Value),
		}
	}
	return printJSON(env.w, reply)
}

func runDigest(c *cli.Context) error {

	env := getEnvironment(c)

	prefix, err := selectedPrefix(c, env)
	if nil != err {
		return err
	}

	digest, n, err := storage.DigestOf(env.db, prefix)
	if nil != err {
		return err
	}

	if env.verbose {
		fmt.Fprintf(env.e, "prefix: %x  keys: %d\n", prefix, n)
	}
	fmt.Fprintf(env.w, "%s\n", digest)
	return nil
}
