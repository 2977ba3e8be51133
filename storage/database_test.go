// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/storageitems/fault"
	"github.com/bitmark-inc/storageitems/storage"
)

var rawVersionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

func TestOpenStampsVersion(t *testing.T) {
	db, _ := setupDatabase(t)
	defer db.Close()

	value, found, err := db.Get(rawVersionKey)
	assert.Nil(t, err, "get version error")
	assert.True(t, found, "version not written")
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x00}, value, "wrong version")
}

func TestOpenRejectsOtherVersion(t *testing.T) {
	db, name := setupDatabase(t)

	err := db.Put(rawVersionKey, []byte{0x00, 0x00, 0x00, 0x09})
	assert.Nil(t, err, "put version error")
	err = db.Close()
	assert.Nil(t, err, "close error")

	_, err = storage.Open(name, storage.ReadWrite)
	assert.Equal(t, fault.ErrDatabaseVersion, err, "wrong error")
}

func TestOpenReadOnlyMissing(t *testing.T) {
	name := filepath.Join(t.TempDir(), "absent.leveldb")
	_, err := storage.Open(name, storage.ReadOnly)
	assert.NotNil(t, err, "opened a missing database read only")
}

func TestReadOnlyRejectsWrites(t *testing.T) {
	db, name := setupDatabase(t)
	fill(t, db, sampleElements)
	db.Close()

	ro, err := storage.Open(name, storage.ReadOnly)
	assert.Nil(t, err, "read only open error")
	defer ro.Close()

	value, found, err := ro.Get([]byte("b:key-one"))
	assert.Nil(t, err, "get error")
	assert.True(t, found, "key not found")
	assert.Equal(t, []byte("data-one"), value, "wrong value")

	assert.Equal(t, fault.ErrReadOnly, ro.Put([]byte("x"), []byte("y")), "put allowed")
	assert.Equal(t, fault.ErrReadOnly, ro.Delete([]byte("x")), "delete allowed")

	_, err = ro.Begin()
	assert.Equal(t, fault.ErrReadOnly, err, "begin allowed")
}

func TestClosedDatabase(t *testing.T) {
	db, _ := setupDatabase(t)
	err := db.Close()
	assert.Nil(t, err, "close error")

	_, _, err = db.Get([]byte("k"))
	assert.Equal(t, fault.ErrNotInitialised, err, "get on closed database")

	err = db.Close()
	assert.Equal(t, fault.ErrNotInitialised, err, "second close")
}

func TestBeginShouldErrorWhenAlreadyInTransaction(t *testing.T) {
	db, _ := setupDatabase(t)
	defer db.Close()

	trx, err := db.Begin()
	assert.Nil(t, err, "first time Begin should not error")

	_, err = db.Begin()
	assert.Equal(t, fault.ErrTransactionInUse, err, "second time Begin should return error")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	trx, err = db.Begin()
	assert.Nil(t, err, "Begin after Commit should not error")
	trx.Abort()

	_, err = db.Begin()
	assert.Nil(t, err, "Begin after Abort should not error")
}

func TestTransactionReadsOwnWrites(t *testing.T) {
	db, _ := setupDatabase(t)
	defer db.Close()
	fill(t, db, sampleElements)

	trx, err := db.Begin()
	assert.Nil(t, err, "begin error")

	err = trx.Put([]byte("new"), []byte("pending"))
	assert.Nil(t, err, "put error")
	err = trx.Delete([]byte("b:key-two"))
	assert.Nil(t, err, "delete error")

	value, found, err := trx.Get([]byte("new"))
	assert.Nil(t, err, "get error")
	assert.True(t, found, "pending put not visible")
	assert.Equal(t, []byte("pending"), value, "wrong pending value")

	_, found, err = trx.Get([]byte("b:key-two"))
	assert.Nil(t, err, "get error")
	assert.False(t, found, "pending delete still visible")

	found, err = trx.Has([]byte("b:key-two"))
	assert.Nil(t, err, "has error")
	assert.False(t, found, "pending delete still present")

	value, found, err = trx.Get([]byte("b:key-one"))
	assert.Nil(t, err, "get error")
	assert.True(t, found, "committed key not visible")
	assert.Equal(t, []byte("data-one"), value, "wrong committed value")

	// nothing reaches the database before commit
	_, found, _ = db.Get([]byte("new"))
	assert.False(t, found, "pending put visible in database")
	_, found, _ = db.Get([]byte("b:key-two"))
	assert.True(t, found, "pending delete applied to database")

	assert.Equal(t, 2, trx.Pending(), "wrong pending count")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	value, found, _ = db.Get([]byte("new"))
	assert.True(t, found, "committed put missing")
	assert.Equal(t, []byte("pending"), value, "wrong committed value")
	_, found, _ = db.Get([]byte("b:key-two"))
	assert.False(t, found, "committed delete not applied")
}

func TestTransactionPutAfterDelete(t *testing.T) {
	db, _ := setupDatabase(t)
	defer db.Close()
	fill(t, db, sampleElements)

	trx, _ := db.Begin()
	_ = trx.Delete([]byte("b:key-one"))
	_ = trx.Put([]byte("b:key-one"), []byte("again"))

	value, found, err := trx.Get([]byte("b:key-one"))
	assert.Nil(t, err, "get error")
	assert.True(t, found, "re-put key not found")
	assert.Equal(t, []byte("again"), value, "wrong value")

	_ = trx.Commit()

	value, _, _ = db.Get([]byte("b:key-one"))
	assert.Equal(t, []byte("again"), value, "batch order not kept")
}

func TestTransactionAbort(t *testing.T) {
	db, _ := setupDatabase(t)
	defer db.Close()

	trx, _ := db.Begin()
	_ = trx.Put([]byte("k"), []byte("v"))
	trx.Abort()

	_, found, _ := db.Get([]byte("k"))
	assert.False(t, found, "aborted put applied")

	_, _, err := trx.Get([]byte("k"))
	assert.Equal(t, fault.ErrTransactionNotStarted, err, "finished transaction still usable")
	err = trx.Put([]byte("k"), []byte("v"))
	assert.Equal(t, fault.ErrTransactionNotStarted, err, "finished transaction still writable")
	err = trx.Commit()
	assert.Equal(t, fault.ErrTransactionNotStarted, err, "finished transaction committed")
}

func TestCloseAbortsTransaction(t *testing.T) {
	db, name := setupDatabase(t)

	trx, _ := db.Begin()
	_ = trx.Put([]byte("k"), []byte("v"))
	err := db.Close()
	assert.Nil(t, err, "close error")

	db, err = storage.Open(name, storage.ReadWrite)
	assert.Nil(t, err, "reopen error")
	defer db.Close()

	_, found, _ := db.Get([]byte("k"))
	assert.False(t, found, "uncommitted put survived close")
}
