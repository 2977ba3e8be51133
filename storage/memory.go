// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// MemoryStore - a store held entirely in memory
//
// intended for tests and for tools that build a state and then discard it
type MemoryStore struct {
	db *memdb.DB
}

// NewMemoryStore - create an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		db: memdb.New(comparer.DefaultComparer, 0),
	}
}

// Has - check if a key exists
func (m *MemoryStore) Has(key []byte) (bool, error) {
	return m.db.Contains(key), nil
}

// Get - read a copy of the value for a key
func (m *MemoryStore) Get(key []byte) ([]byte, bool, error) {
	value, err := m.db.Get(key)
	if memdb.ErrNotFound == err {
		return nil, false, nil
	}
	if nil != err {
		return nil, false, err
	}

	// memdb returns a slice of its internal buffer
	result := make([]byte, len(value))
	copy(result, value)
	return result, true, nil
}

// Put - store a key/value pair
func (m *MemoryStore) Put(key []byte, value []byte) error {
	return m.db.Put(key, value)
}

// Delete - remove a key if present
func (m *MemoryStore) Delete(key []byte) error {
	err := m.db.Delete(key)
	if memdb.ErrNotFound == err {
		return nil
	}
	return err
}

// Len - number of keys stored
func (m *MemoryStore) Len() int {
	return m.db.Len()
}

// NewIterator - scan all keys beginning with prefix
func (m *MemoryStore) NewIterator(prefix []byte) iterator.Iterator {
	return m.db.NewIterator(util.BytesPrefix(prefix))
}
