// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"github.com/bitmark-inc/storageitems/codec"
	"github.com/bitmark-inc/storageitems/fault"
	"github.com/bitmark-inc/storageitems/storage"
)

// one physical key holding one encoded value
type slot[T any] struct {
	key   []byte
	codec codec.Codec[T]
}

func (sl slot[T]) exists(s storage.Store) (bool, error) {
	return s.Has(sl.key)
}

func (sl slot[T]) load(s storage.Store) (T, bool, error) {
	var zero T

	raw, found, err := s.Get(sl.key)
	if nil != err || !found {
		return zero, false, err
	}

	value, err := codec.Decode(sl.codec, raw)
	if nil != err {
		return zero, false, fault.Defect(fault.ErrDecodeFailed, "key: %x  type: %s  error: %s", sl.key, sl.codec.Name(), err)
	}
	return value, true, nil
}

func (sl slot[T]) store(s storage.Store, value T) error {
	return s.Put(sl.key, codec.Encode(sl.codec, value))
}

func (sl slot[T]) kill(s storage.Store) error {
	return s.Delete(sl.key)
}

// read then delete, an absent key is left alone
func (sl slot[T]) take(s storage.Store) (T, bool, error) {
	value, found, err := sl.load(s)
	if nil != err || !found {
		return value, false, err
	}
	err = sl.kill(s)
	if nil != err {
		var zero T
		return zero, false, err
	}
	return value, true, nil
}

func (sl slot[T]) missing() error {
	return fault.Defect(fault.ErrRequiredItemMissing, "key: %x  type: %s", sl.key, sl.codec.Name())
}

// copy of a byte slice that never aliases the input
func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// encoded default decoded afresh on each use so callers never share it
type fallback[T any] struct {
	codec   codec.Codec[T]
	encoded []byte
}

func newFallback[T any](c codec.Codec[T], value T) fallback[T] {
	return fallback[T]{
		codec:   c,
		encoded: codec.Encode(c, value),
	}
}

func (f fallback[T]) value() T {
	v, err := codec.Decode(f.codec, f.encoded)
	fault.PanicIfError("default value decode", err)
	return v
}
