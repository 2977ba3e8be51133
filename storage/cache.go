// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/patrickmn/go-cache"
)

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

type cacheData struct {
	op    dbOperation
	value []byte
}

// overlay of pending writes, consulted before the database
//
// entries never expire since a stale read would hide a pending write
type overlay struct {
	data *cache.Cache
}

func newOverlay() *overlay {
	return &overlay{
		data: cache.New(cache.NoExpiration, 0),
	}
}

func (o *overlay) put(key []byte, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	o.data.Set(string(key), cacheData{op: dbPut, value: v}, cache.NoExpiration)
}

func (o *overlay) delete(key []byte) {
	o.data.Set(string(key), cacheData{op: dbDelete}, cache.NoExpiration)
}

// found is false only when the key has no pending operation;
// a pending delete is reported as found with op == dbDelete
func (o *overlay) get(key []byte) (cacheData, bool) {
	obj, found := o.data.Get(string(key))
	if !found {
		return cacheData{}, false
	}
	return obj.(cacheData), true
}

func (o *overlay) size() int {
	return o.data.ItemCount()
}

func (o *overlay) clear() {
	o.data.Flush()
}
