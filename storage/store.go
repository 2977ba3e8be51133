// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"
)

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks

// Store - the raw byte store used by all typed storage items
type Store interface {
	// true if the key exists
	Has(key []byte) (bool, error)

	// value of the key, second parameter is false if not found
	Get(key []byte) ([]byte, bool, error)

	// create or overwrite a key
	Put(key []byte, value []byte) error

	// remove a key, removing an absent key is not an error
	Delete(key []byte) error
}

// Iterable - a store whose committed keys can be scanned in key order
type Iterable interface {
	NewIterator(prefix []byte) iterator.Iterator
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}
