// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"

	"github.com/bitmark-inc/storageitems/fault"
)

// Cursor - page through the keys under a prefix
type Cursor struct {
	source Iterable
	prefix []byte
	start  []byte // next key to return, with prefix
}

// NewCursor - initialise a cursor to the start of a key prefix
func NewCursor(source Iterable, prefix []byte) *Cursor {
	p := make([]byte, len(prefix))
	copy(p, prefix)
	return &Cursor{
		source: source,
		prefix: p,
		start:  p,
	}
}

// Seek - move cursor to the first key at or after prefix ++ key
func (cursor *Cursor) Seek(key []byte) *Cursor {
	cursor.start = append(append([]byte{}, cursor.prefix...), key...)
	return cursor
}

// Fetch - return up to count elements, keys are returned without the prefix
func (cursor *Cursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.scan(func(key []byte, value []byte) bool {
		results = append(results, Element{
			Key:   key,
			Value: value,
		})
		return len(results) < count
	})
	return results, err
}

// Map - run a function on all remaining elements
func (cursor *Cursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	var ferr error
	err := cursor.scan(func(key []byte, value []byte) bool {
		ferr = f(key, value)
		return nil == ferr
	})
	if nil != ferr {
		return ferr
	}
	return err
}

// iterate from the current start, advancing past each key delivered
func (cursor *Cursor) scan(f func(key []byte, value []byte) bool) error {
	iter := cursor.source.NewIterator(cursor.prefix)
	defer iter.Release()

	ok := iter.Seek(cursor.start)
	for ; ok; ok = iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		if !bytes.HasPrefix(key, cursor.prefix) {
			break
		}
		value := iter.Value()

		dataKey := make([]byte, len(key)-len(cursor.prefix))
		copy(dataKey, key[len(cursor.prefix):])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		// the smallest key strictly after this one
		next := make([]byte, len(key)+1)
		copy(next, key)
		cursor.start = next

		if !f(dataKey, dataValue) {
			break
		}
	}
	return iter.Error()
}
