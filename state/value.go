// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"github.com/bitmark-inc/storageitems/codec"
	"github.com/bitmark-inc/storageitems/storage"
)

// the key and codec shared by every value accessor
type fixedKey[T any] struct {
	slot slot[T]
}

func newFixedKey[T any](key []byte, value codec.Codec[T]) fixedKey[T] {
	return fixedKey[T]{
		slot: slot[T]{
			key:   clone(key),
			codec: value,
		},
	}
}

// Key - the physical key
func (v fixedKey[T]) Key() []byte {
	return clone(v.slot.key)
}

// Codec - the value codec
func (v fixedKey[T]) Codec() codec.Codec[T] {
	return v.slot.codec
}

// Exists - true if the key is set, a fallback or default does not count
func (v fixedKey[T]) Exists(s storage.Store) (bool, error) {
	return v.slot.exists(s)
}

// Put - store a value
func (v fixedKey[T]) Put(s storage.Store, value T) error {
	return v.slot.store(s, value)
}

// Kill - remove the value, killing an unset value is not an error
func (v fixedKey[T]) Kill(s storage.Store) error {
	return v.slot.kill(s)
}

// Value - a single optional value at a fixed key
type Value[T any] struct {
	fixedKey[T]
	fallback *fallback[T]
}

// NewValue - value accessor for key
func NewValue[T any](key []byte, value codec.Codec[T]) Value[T] {
	return Value[T]{
		fixedKey: newFixedKey(key, value),
	}
}

// WithFallback - a copy of the accessor that reads an unset key as
// present with the given value
func (v Value[T]) WithFallback(value T) Value[T] {
	f := newFallback(v.slot.codec, value)
	v.fallback = &f
	return v
}

// Get - the stored value, second result false if unset and no fallback
func (v Value[T]) Get(s storage.Store) (T, bool, error) {
	value, found, err := v.slot.load(s)
	if nil == err && !found && nil != v.fallback {
		return v.fallback.value(), true, nil
	}
	return value, found, err
}

// Take - Get then Kill
func (v Value[T]) Take(s storage.Store) (T, bool, error) {
	value, found, err := v.slot.take(s)
	if nil == err && !found && nil != v.fallback {
		return v.fallback.value(), true, nil
	}
	return value, found, err
}

// Mutate - read, transform and write back
//
// f receives the current value as Get would return it; returning
// false as the second result removes the value
func (v Value[T]) Mutate(s storage.Store, f func(T, bool) (T, bool)) error {
	value, found, err := v.Get(s)
	if nil != err {
		return err
	}
	value, found = f(value, found)
	if !found {
		return v.slot.kill(s)
	}
	return v.slot.store(s, value)
}

// DefaultValue - a value that reads as a default when unset
type DefaultValue[T any] struct {
	fixedKey[T]
	def fallback[T]
}

// NewDefaultValue - value accessor for key with a default
func NewDefaultValue[T any](key []byte, value codec.Codec[T], def T) DefaultValue[T] {
	return DefaultValue[T]{
		fixedKey: newFixedKey(key, value),
		def:      newFallback(value, def),
	}
}

// Optional - the same key read without the default
func (v DefaultValue[T]) Optional() Value[T] {
	return Value[T]{fixedKey: v.fixedKey}
}

// Default - a fresh copy of the default
func (v DefaultValue[T]) Default() T {
	return v.def.value()
}

// Get - the stored value or the default
func (v DefaultValue[T]) Get(s storage.Store) (T, error) {
	value, found, err := v.slot.load(s)
	if nil == err && !found {
		return v.def.value(), nil
	}
	return value, err
}

// Take - Get then Kill
func (v DefaultValue[T]) Take(s storage.Store) (T, error) {
	value, found, err := v.slot.take(s)
	if nil == err && !found {
		return v.def.value(), nil
	}
	return value, err
}

// Mutate - read (default if unset), transform and write back
//
// the result is always stored, even when equal to the default
func (v DefaultValue[T]) Mutate(s storage.Store, f func(T) T) error {
	value, err := v.Get(s)
	if nil != err {
		return err
	}
	return v.slot.store(s, f(value))
}

// RequiredValue - a value that must always be set once initialised
type RequiredValue[T any] struct {
	fixedKey[T]
}

// NewRequiredValue - value accessor for key that must be present
func NewRequiredValue[T any](key []byte, value codec.Codec[T]) RequiredValue[T] {
	return RequiredValue[T]{
		fixedKey: newFixedKey(key, value),
	}
}

// Optional - the same key read without the defect on absence
func (v RequiredValue[T]) Optional() Value[T] {
	return Value[T]{fixedKey: v.fixedKey}
}

// Get - the stored value, an unset key is a defect
func (v RequiredValue[T]) Get(s storage.Store) (T, error) {
	value, found, err := v.slot.load(s)
	if nil == err && !found {
		return value, v.slot.missing()
	}
	return value, err
}

// Take - Get then Kill
func (v RequiredValue[T]) Take(s storage.Store) (T, error) {
	value, found, err := v.slot.take(s)
	if nil == err && !found {
		return value, v.slot.missing()
	}
	return value, err
}

// Mutate - read, transform and write back, an unset key is a defect
func (v RequiredValue[T]) Mutate(s storage.Store, f func(T) T) error {
	value, err := v.Get(s)
	if nil != err {
		return err
	}
	return v.slot.store(s, f(value))
}
