// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/storageitems/fault"
)

// Transaction - buffered writes against a database
//
// reads observe the transaction's own pending writes and deletes;
// nothing reaches the database until Commit
type Transaction struct {
	sync.Mutex
	db      *Database
	batch   *leveldb.Batch
	pending *overlay
	done    bool
}

func newTransaction(db *Database) *Transaction {
	return &Transaction{
		db:      db,
		batch:   new(leveldb.Batch),
		pending: newOverlay(),
	}
}

// Has - check if a key exists after pending operations
func (t *Transaction) Has(key []byte) (bool, error) {
	t.Lock()
	defer t.Unlock()

	if t.done {
		return false, fault.ErrTransactionNotStarted
	}

	if data, found := t.pending.get(key); found {
		return dbPut == data.op, nil
	}
	return t.db.Has(key)
}

// Get - read a value after pending operations
func (t *Transaction) Get(key []byte) ([]byte, bool, error) {
	t.Lock()
	defer t.Unlock()

	if t.done {
		return nil, false, fault.ErrTransactionNotStarted
	}

	if data, found := t.pending.get(key); found {
		if dbDelete == data.op {
			return nil, false, nil
		}
		value := make([]byte, len(data.value))
		copy(value, data.value)
		return value, true, nil
	}
	return t.db.Get(key)
}

// Put - queue a write
func (t *Transaction) Put(key []byte, value []byte) error {
	t.Lock()
	defer t.Unlock()

	if t.done {
		return fault.ErrTransactionNotStarted
	}

	t.batch.Put(key, value)
	t.pending.put(key, value)
	return nil
}

// Delete - queue a delete
func (t *Transaction) Delete(key []byte) error {
	t.Lock()
	defer t.Unlock()

	if t.done {
		return fault.ErrTransactionNotStarted
	}

	t.batch.Delete(key)
	t.pending.delete(key)
	return nil
}

// Pending - number of distinct keys with queued operations
func (t *Transaction) Pending() int {
	t.Lock()
	defer t.Unlock()

	return t.pending.size()
}

// Commit - write all queued operations to the database atomically
func (t *Transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if t.done {
		return fault.ErrTransactionNotStarted
	}

	err := t.db.write(t.batch)
	t.finish()
	return err
}

// Abort - discard all queued operations
func (t *Transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	if t.done {
		return
	}
	t.db.log.Debugf("abort: discard %d operations", t.batch.Len())
	t.finish()
}

func (t *Transaction) finish() {
	t.batch.Reset()
	t.pending.clear()
	t.done = true
	t.db.release(t)
}
