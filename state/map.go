// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"github.com/bitmark-inc/storageitems/codec"
	"github.com/bitmark-inc/storageitems/storage"
)

// Map - optional values addressed by a key under a common prefix
//
// the physical key is prefix ++ encode(k); distinct logical keys map
// to distinct physical keys as long as the key codec is self-delimiting
type Map[K any, V any] struct {
	prefix []byte
	key    codec.Codec[K]
	value  codec.Codec[V]
}

// NewMap - map accessor below prefix
func NewMap[K any, V any](prefix []byte, key codec.Codec[K], value codec.Codec[V]) Map[K, V] {
	return Map[K, V]{
		prefix: clone(prefix),
		key:    key,
		value:  value,
	}
}

// Prefix - the common prefix of all entries
func (m Map[K, V]) Prefix() []byte {
	return clone(m.prefix)
}

// KeyCodec - the key codec
func (m Map[K, V]) KeyCodec() codec.Codec[K] {
	return m.key
}

// ValueCodec - the value codec
func (m Map[K, V]) ValueCodec() codec.Codec[V] {
	return m.value
}

// KeyFor - the physical key of an entry
func (m Map[K, V]) KeyFor(k K) []byte {
	buffer := make([]byte, len(m.prefix), len(m.prefix)+16)
	copy(buffer, m.prefix)
	return m.key.Append(buffer, k)
}

func (m Map[K, V]) slot(k K) slot[V] {
	return slot[V]{
		key:   m.KeyFor(k),
		codec: m.value,
	}
}

// Exists - true if the entry is set
func (m Map[K, V]) Exists(s storage.Store, k K) (bool, error) {
	return m.slot(k).exists(s)
}

// Get - the entry, second result false if unset
func (m Map[K, V]) Get(s storage.Store, k K) (V, bool, error) {
	return m.slot(k).load(s)
}

// Take - Get then Remove
func (m Map[K, V]) Take(s storage.Store, k K) (V, bool, error) {
	return m.slot(k).take(s)
}

// Insert - create or overwrite an entry
func (m Map[K, V]) Insert(s storage.Store, k K, v V) error {
	return m.slot(k).store(s, v)
}

// Remove - delete an entry, removing an unset entry is not an error
func (m Map[K, V]) Remove(s storage.Store, k K) error {
	return m.slot(k).kill(s)
}

// Mutate - read, transform and write back one entry
//
// returning false as the second result removes the entry
func (m Map[K, V]) Mutate(s storage.Store, k K, f func(V, bool) (V, bool)) error {
	sl := m.slot(k)
	value, found, err := sl.load(s)
	if nil != err {
		return err
	}
	value, found = f(value, found)
	if !found {
		return sl.kill(s)
	}
	return sl.store(s, value)
}

// DefaultMap - a map whose unset entries read as a default
type DefaultMap[K any, V any] struct {
	Map[K, V]
	def fallback[V]
}

// NewDefaultMap - map accessor below prefix with a default value
func NewDefaultMap[K any, V any](prefix []byte, key codec.Codec[K], value codec.Codec[V], def V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		Map: NewMap(prefix, key, value),
		def: newFallback(value, def),
	}
}

// Default - a fresh copy of the default
func (m DefaultMap[K, V]) Default() V {
	return m.def.value()
}

// Get - the entry or the default
func (m DefaultMap[K, V]) Get(s storage.Store, k K) (V, error) {
	value, found, err := m.slot(k).load(s)
	if nil == err && !found {
		return m.def.value(), nil
	}
	return value, err
}

// Take - Get then Remove
func (m DefaultMap[K, V]) Take(s storage.Store, k K) (V, error) {
	value, found, err := m.slot(k).take(s)
	if nil == err && !found {
		return m.def.value(), nil
	}
	return value, err
}

// Mutate - read (default if unset), transform and always write back
func (m DefaultMap[K, V]) Mutate(s storage.Store, k K, f func(V) V) error {
	value, err := m.Get(s, k)
	if nil != err {
		return err
	}
	return m.slot(k).store(s, f(value))
}

// RequiredMap - a map whose accessed entries must be set
type RequiredMap[K any, V any] struct {
	Map[K, V]
}

// NewRequiredMap - map accessor below prefix whose entries must be present
func NewRequiredMap[K any, V any](prefix []byte, key codec.Codec[K], value codec.Codec[V]) RequiredMap[K, V] {
	return RequiredMap[K, V]{
		Map: NewMap(prefix, key, value),
	}
}

// Get - the entry, an unset entry is a defect
func (m RequiredMap[K, V]) Get(s storage.Store, k K) (V, error) {
	sl := m.slot(k)
	value, found, err := sl.load(s)
	if nil == err && !found {
		return value, sl.missing()
	}
	return value, err
}

// Take - Get then Remove
func (m RequiredMap[K, V]) Take(s storage.Store, k K) (V, error) {
	sl := m.slot(k)
	value, found, err := sl.take(s)
	if nil == err && !found {
		return value, sl.missing()
	}
	return value, err
}

// Mutate - read, transform and write back, an unset entry is a defect
func (m RequiredMap[K, V]) Mutate(s storage.Store, k K, f func(V) V) error {
	value, err := m.Get(s, k)
	if nil != err {
		return err
	}
	return m.slot(k).store(s, f(value))
}
