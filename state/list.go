// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"math"

	"github.com/bitmark-inc/storageitems/codec"
	"github.com/bitmark-inc/storageitems/fault"
	"github.com/bitmark-inc/storageitems/storage"
)

// suffix of the length key, never equal to a 4 byte index
var lengthSuffix = []byte("len")

// upper bound on the capacity reserved before elements are read
const itemsPreallocate = 1024

// List - a sequence stored one element per key
//
//   prefix ++ "len"    length (u32)
//   prefix ++ u32(i)   element i, present for every i < length
type List[T any] struct {
	prefix []byte
	value  codec.Codec[T]
}

// NewList - list accessor below prefix
func NewList[T any](prefix []byte, value codec.Codec[T]) List[T] {
	return List[T]{
		prefix: clone(prefix),
		value:  value,
	}
}

// Prefix - the common prefix of all keys
func (l List[T]) Prefix() []byte {
	return clone(l.prefix)
}

// Codec - the element codec
func (l List[T]) Codec() codec.Codec[T] {
	return l.value
}

// LenKey - the physical key of the length
func (l List[T]) LenKey() []byte {
	buffer := make([]byte, len(l.prefix), len(l.prefix)+len(lengthSuffix))
	copy(buffer, l.prefix)
	return append(buffer, lengthSuffix...)
}

// KeyFor - the physical key of element i
func (l List[T]) KeyFor(i uint32) []byte {
	buffer := make([]byte, len(l.prefix), len(l.prefix)+4)
	copy(buffer, l.prefix)
	return codec.U32.Append(buffer, i)
}

func (l List[T]) length() slot[uint32] {
	return slot[uint32]{
		key:   l.LenKey(),
		codec: codec.U32,
	}
}

func (l List[T]) element(i uint32) slot[T] {
	return slot[T]{
		key:   l.KeyFor(i),
		codec: l.value,
	}
}

// Len - the number of elements, zero if never set
func (l List[T]) Len(s storage.Store) (uint32, error) {
	n, _, err := l.length().load(s)
	return n, err
}

// Get - element i, second result false if not present
func (l List[T]) Get(s storage.Store, i uint32) (T, bool, error) {
	return l.element(i).load(s)
}

// Items - all elements in index order
func (l List[T]) Items(s storage.Store) ([]T, error) {
	n, err := l.Len(s)
	if nil != err {
		return nil, err
	}

	// the stored length is untrusted so do not let it size the allocation
	capacity := n
	if capacity > itemsPreallocate {
		capacity = itemsPreallocate
	}

	items := make([]T, 0, capacity)
	for i := uint32(0); i < n; i += 1 {
		sl := l.element(i)
		value, found, err := sl.load(s)
		if nil != err {
			return nil, err
		}
		if !found {
			return nil, fault.Defect(fault.ErrListElementMissing, "key: %x  index: %d  length: %d", sl.key, i, n)
		}
		items = append(items, value)
	}
	return items, nil
}

// SetItem - overwrite element i, ignored if i is not below the length
func (l List[T]) SetItem(s storage.Store, i uint32, value T) error {
	n, err := l.Len(s)
	if nil != err {
		return err
	}
	if i >= n {
		return nil
	}
	return l.element(i).store(s, value)
}

// SetItems - replace the whole list
//
// elements beyond the new length are removed before the length is
// written, then all elements are written
func (l List[T]) SetItems(s storage.Store, items []T) error {
	if uint64(len(items)) > math.MaxUint32 {
		return fault.ErrValueTooLarge
	}
	newLength := uint32(len(items))

	oldLength, err := l.Len(s)
	if nil != err {
		return err
	}

	for i := newLength; i < oldLength; i += 1 {
		err := l.element(i).kill(s)
		if nil != err {
			return err
		}
	}

	err = l.length().store(s, newLength)
	if nil != err {
		return err
	}

	for i, value := range items {
		err := l.element(uint32(i)).store(s, value)
		if nil != err {
			return err
		}
	}
	return nil
}

// Clear - remove all elements and the length
func (l List[T]) Clear(s storage.Store) error {
	n, err := l.Len(s)
	if nil != err {
		return err
	}

	for i := uint32(0); i < n; i += 1 {
		err := l.element(i).kill(s)
		if nil != err {
			return err
		}
	}
	return l.length().kill(s)
}
