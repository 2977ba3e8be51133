// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/storageitems/storage"
)

func TestMemoryStore(t *testing.T) {
	m := storage.NewMemoryStore()

	key := []byte("key")

	found, err := m.Has(key)
	assert.Nil(t, err, "has error")
	assert.False(t, found, "empty store has key")

	_, found, err = m.Get(key)
	assert.Nil(t, err, "get error")
	assert.False(t, found, "empty store get found")

	err = m.Put(key, []byte("value"))
	assert.Nil(t, err, "put error")

	value, found, err := m.Get(key)
	assert.Nil(t, err, "get error")
	assert.True(t, found, "stored key not found")
	assert.Equal(t, []byte("value"), value, "wrong value")

	// returned slice is a copy
	value[0] = 'X'
	again, _, _ := m.Get(key)
	assert.Equal(t, []byte("value"), again, "stored value was modified through result")

	err = m.Delete(key)
	assert.Nil(t, err, "delete error")
	err = m.Delete(key)
	assert.Nil(t, err, "second delete error")

	found, err = m.Has(key)
	assert.Nil(t, err, "has error")
	assert.False(t, found, "deleted key still present")
	assert.Equal(t, 0, m.Len(), "store not empty")
}

func TestMemoryStoreEmptyValue(t *testing.T) {
	m := storage.NewMemoryStore()

	err := m.Put([]byte("k"), []byte{})
	assert.Nil(t, err, "put error")

	value, found, err := m.Get([]byte("k"))
	assert.Nil(t, err, "get error")
	assert.True(t, found, "empty value not found")
	assert.Equal(t, 0, len(value), "wrong value length")
}
