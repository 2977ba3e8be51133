// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/storageitems/codec"
	"github.com/bitmark-inc/storageitems/fault"
	"github.com/bitmark-inc/storageitems/state"
	"github.com/bitmark-inc/storageitems/storage"
	"github.com/bitmark-inc/storageitems/storage/mocks"
)

func TestValueLifecycle(t *testing.T) {
	s := storage.NewMemoryStore()
	v := state.NewValue([]byte("a"), codec.U32)

	assert.Equal(t, []byte("a"), v.Key(), "wrong key")

	_, found, err := v.Get(s)
	assert.Nil(t, err, "get error")
	assert.False(t, found, "fresh value found")

	err = v.Put(s, 100000)
	assert.Nil(t, err, "put error")

	value, found, err := v.Get(s)
	assert.Nil(t, err, "get error")
	assert.True(t, found, "stored value not found")
	assert.Equal(t, uint32(100000), value, "wrong value")

	raw, _, _ := s.Get([]byte("a"))
	assert.Equal(t, []byte{0x00, 0x01, 0x86, 0xa0}, raw, "wrong stored bytes")

	err = v.Kill(s)
	assert.Nil(t, err, "kill error")

	exists, err := v.Exists(s)
	assert.Nil(t, err, "exists error")
	assert.False(t, exists, "killed value exists")

	err = v.Kill(s)
	assert.Nil(t, err, "second kill error")
}

func TestValueTake(t *testing.T) {
	s := storage.NewMemoryStore()
	v := state.NewValue([]byte("a"), codec.String)

	_ = v.Put(s, "taken")

	value, found, err := v.Take(s)
	assert.Nil(t, err, "take error")
	assert.True(t, found, "take did not find value")
	assert.Equal(t, "taken", value, "wrong value")

	_, found, err = v.Take(s)
	assert.Nil(t, err, "second take error")
	assert.False(t, found, "second take found value")
	assert.Equal(t, 0, s.Len(), "store not empty")
}

func TestValueFallback(t *testing.T) {
	s := storage.NewMemoryStore()
	v := state.NewValue([]byte("opt"), codec.U32).WithFallback(3)

	value, found, err := v.Get(s)
	assert.Nil(t, err, "get error")
	assert.True(t, found, "fallback not present")
	assert.Equal(t, uint32(3), value, "wrong fallback")

	exists, _ := v.Exists(s)
	assert.False(t, exists, "fallback counted as stored")

	_ = v.Put(s, 9)
	value, found, _ = v.Get(s)
	assert.True(t, found, "stored value not found")
	assert.Equal(t, uint32(9), value, "stored value hidden by fallback")
}

func TestValueMutate(t *testing.T) {
	s := storage.NewMemoryStore()
	v := state.NewValue([]byte("counter"), codec.U64)

	increment := func(n uint64, found bool) (uint64, bool) {
		return n + 1, true
	}

	err := v.Mutate(s, increment)
	assert.Nil(t, err, "mutate error")
	err = v.Mutate(s, increment)
	assert.Nil(t, err, "mutate error")

	value, found, _ := v.Get(s)
	assert.True(t, found, "mutated value missing")
	assert.Equal(t, uint64(2), value, "wrong value")

	err = v.Mutate(s, func(n uint64, found bool) (uint64, bool) {
		return 0, false
	})
	assert.Nil(t, err, "mutate error")

	exists, _ := v.Exists(s)
	assert.False(t, exists, "absent mutate result did not kill")
}

func TestValueMutateIdentity(t *testing.T) {
	s := storage.NewMemoryStore()
	v := state.NewValue([]byte("id"), codec.Bytes)
	_ = v.Put(s, []byte{1, 2, 3})

	before, _, _ := s.Get([]byte("id"))
	err := v.Mutate(s, func(b []byte, found bool) ([]byte, bool) {
		return b, found
	})
	assert.Nil(t, err, "mutate error")
	after, _, _ := s.Get([]byte("id"))
	assert.Equal(t, before, after, "identity mutate changed the store")

	// identity on an unset value leaves it unset
	u := state.NewValue([]byte("unset"), codec.Bytes)
	err = u.Mutate(s, func(b []byte, found bool) ([]byte, bool) {
		return b, found
	})
	assert.Nil(t, err, "mutate error")
	exists, _ := u.Exists(s)
	assert.False(t, exists, "identity mutate created a value")
}

func TestDefaultValue(t *testing.T) {
	s := storage.NewMemoryStore()
	v := state.NewDefaultValue([]byte("d"), codec.U32, 7)

	value, err := v.Get(s)
	assert.Nil(t, err, "get error")
	assert.Equal(t, uint32(7), value, "wrong default")

	exists, _ := v.Exists(s)
	assert.False(t, exists, "default counted as stored")

	err = v.Mutate(s, func(n uint32) uint32 { return n + 1 })
	assert.Nil(t, err, "mutate error")

	value, err = v.Get(s)
	assert.Nil(t, err, "get error")
	assert.Equal(t, uint32(8), value, "wrong mutated value")

	// optional view of the same key
	_, found, _ := v.Optional().Get(s)
	assert.True(t, found, "mutate did not store")

	value, err = v.Take(s)
	assert.Nil(t, err, "take error")
	assert.Equal(t, uint32(8), value, "wrong taken value")

	value, err = v.Take(s)
	assert.Nil(t, err, "take error")
	assert.Equal(t, uint32(7), value, "take of unset is not the default")
}

func TestDefaultValueMutateStoresDefault(t *testing.T) {
	s := storage.NewMemoryStore()
	v := state.NewDefaultValue([]byte("d"), codec.U32, 7)

	err := v.Mutate(s, func(n uint32) uint32 { return n })
	assert.Nil(t, err, "mutate error")

	raw, found, _ := s.Get([]byte("d"))
	assert.True(t, found, "default not stored")
	assert.Equal(t, []byte{0, 0, 0, 7}, raw, "wrong stored default")
}

func TestDefaultValueIsNotShared(t *testing.T) {
	s := storage.NewMemoryStore()
	v := state.NewDefaultValue([]byte("d"), codec.Bytes, []byte{1, 2})

	value, _ := v.Get(s)
	value[0] = 99

	assert.Equal(t, []byte{1, 2}, v.Default(), "default modified through a result")
}

func TestRequiredValue(t *testing.T) {
	s := storage.NewMemoryStore()
	v := state.NewRequiredValue([]byte("r"), codec.U32)

	_, err := v.Get(s)
	assert.True(t, fault.IsErrRecord(err), "missing required value is not a defect: %v", err)
	assert.True(t, errors.Is(err, fault.ErrRequiredItemMissing), "wrong error: %v", err)

	err = v.Mutate(s, func(n uint32) uint32 { return n + 1 })
	assert.True(t, errors.Is(err, fault.ErrRequiredItemMissing), "wrong mutate error: %v", err)
	assert.Equal(t, 0, s.Len(), "failed mutate wrote to store")

	_ = v.Put(s, 41)
	err = v.Mutate(s, func(n uint32) uint32 { return n + 1 })
	assert.Nil(t, err, "mutate error")

	value, err := v.Take(s)
	assert.Nil(t, err, "take error")
	assert.Equal(t, uint32(42), value, "wrong value")

	_, err = v.Take(s)
	assert.True(t, errors.Is(err, fault.ErrRequiredItemMissing), "wrong take error: %v", err)
}

func TestPolicyValuesHaveNoFallback(t *testing.T) {
	for _, v := range []interface{}{
		state.NewDefaultValue([]byte("a"), codec.U32, 7),
		state.NewRequiredValue([]byte("a"), codec.U32),
	} {
		_, ok := reflect.TypeOf(v).MethodByName("WithFallback")
		assert.False(t, ok, "%T can drop its policy", v)
	}

	s := storage.NewMemoryStore()
	r := state.NewRequiredValue([]byte("a"), codec.U32)

	_, found, err := r.Optional().Get(s)
	assert.Nil(t, err, "optional view error")
	assert.False(t, found, "optional view found an unset key")

	_, err = r.Get(s)
	assert.True(t, errors.Is(err, fault.ErrRequiredItemMissing), "required policy lost: %v", err)
}

func TestValueDecodeDefect(t *testing.T) {
	s := storage.NewMemoryStore()
	_ = s.Put([]byte("a"), []byte{0x01})

	v := state.NewValue([]byte("a"), codec.U32)
	_, _, err := v.Get(s)
	assert.True(t, fault.IsErrRecord(err), "short value is not a defect: %v", err)
	assert.True(t, errors.Is(err, fault.ErrDecodeFailed), "wrong error: %v", err)

	// trailing bytes are also a defect
	_ = s.Put([]byte("a"), []byte{0, 0, 0, 1, 0})
	_, _, err = v.Get(s)
	assert.True(t, errors.Is(err, fault.ErrDecodeFailed), "trailing bytes accepted: %v", err)

	err = v.Mutate(s, func(n uint32, found bool) (uint32, bool) { return 1, true })
	assert.True(t, errors.Is(err, fault.ErrDecodeFailed), "mutate over corrupt value: %v", err)

	d := state.NewDefaultValue([]byte("a"), codec.U32, 5)
	_, err = d.Get(s)
	assert.True(t, errors.Is(err, fault.ErrDecodeFailed), "default hides defect: %v", err)
}

func TestValueStoreErrorPropagates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockStore(ctl)
	storeErr := errors.New("disk on fire")

	s.EXPECT().Get([]byte("a")).Return(nil, false, storeErr).Times(2)
	s.EXPECT().Put([]byte("a"), gomock.Any()).Return(storeErr).Times(1)
	s.EXPECT().Delete([]byte("a")).Return(storeErr).Times(1)

	v := state.NewValue([]byte("a"), codec.U32)

	_, _, err := v.Get(s)
	assert.Equal(t, storeErr, err, "wrong get error")

	err = v.Put(s, 1)
	assert.Equal(t, storeErr, err, "wrong put error")

	err = v.Kill(s)
	assert.Equal(t, storeErr, err, "wrong kill error")

	err = v.Mutate(s, func(n uint32, found bool) (uint32, bool) { return n, true })
	assert.Equal(t, storeErr, err, "wrong mutate error")
}

func TestTakeDoesNotDeleteWhenAbsent(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockStore(ctl)
	s.EXPECT().Get([]byte("a")).Return(nil, false, nil).Times(1)

	v := state.NewValue([]byte("a"), codec.U32)
	_, found, err := v.Take(s)
	assert.Nil(t, err, "take error")
	assert.False(t, found, "take found absent value")
}
