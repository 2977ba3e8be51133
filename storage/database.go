// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/storageitems/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentVersion = 0x100
)

// database access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - a LevelDB state database
type Database struct {
	sync.RWMutex
	log      *logger.L
	name     string
	db       *leveldb.DB
	readOnly bool
	trx      *Transaction
}

// Open - open or create a state database
//
// a new read/write database is stamped with the current version;
// an existing database must carry the current version
func Open(name string, readOnly bool) (*Database, error) {
	log := logger.New("storage")

	db, version, err := getDB(name, readOnly)
	if nil != err {
		log.Errorf("open: %q  error: %s", name, err)
		return nil, err
	}

	switch version {
	case 0:
		if readOnly {
			log.Warnf("open: %q  has no version", name)
			break
		}
		err = putVersion(db, currentVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
		log.Infof("open: %q  initialised to version: 0x%x", name, currentVersion)

	case currentVersion:
		log.Infof("open: %q  version: 0x%x", name, version)

	default:
		db.Close()
		log.Errorf("open: %q  version: 0x%x  expected: 0x%x", name, version, currentVersion)
		return nil, fault.ErrDatabaseVersion
	}

	return &Database{
		log:      log,
		name:     name,
		db:       db,
		readOnly: readOnly,
	}, nil
}

func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d: %w", 4, len(versionValue), fault.ErrDatabaseVersion)
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	v := make([]byte, 4)
	binary.BigEndian.PutUint32(v, uint32(version))

	return db.Put(versionKey, v, nil)
}

// Close - close the database, any open transaction is discarded
func (d *Database) Close() error {
	d.Lock()
	trx := d.trx
	d.Unlock()

	if nil != trx {
		trx.Abort()
	}

	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return fault.ErrNotInitialised
	}
	err := d.db.Close()
	d.db = nil
	d.log.Infof("close: %q", d.name)
	d.log.Flush()
	return err
}

// Begin - start the single transaction
func (d *Database) Begin() (*Transaction, error) {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return nil, fault.ErrNotInitialised
	}
	if d.readOnly {
		return nil, fault.ErrReadOnly
	}
	if nil != d.trx {
		return nil, fault.ErrTransactionInUse
	}

	d.trx = newTransaction(d)
	d.log.Debug("begin")
	return d.trx, nil
}

// called by a finishing transaction with its lock held
func (d *Database) release(trx *Transaction) {
	d.Lock()
	defer d.Unlock()

	if trx == d.trx {
		d.trx = nil
	}
}

func (d *Database) write(batch *leveldb.Batch) error {
	d.RLock()
	defer d.RUnlock()

	if nil == d.db {
		return fault.ErrNotInitialised
	}
	d.log.Debugf("commit: %d operations", batch.Len())
	return d.db.Write(batch, nil)
}

// Has - check if a committed key exists
func (d *Database) Has(key []byte) (bool, error) {
	d.RLock()
	defer d.RUnlock()

	if nil == d.db {
		return false, fault.ErrNotInitialised
	}
	return d.db.Has(key, nil)
}

// Get - read a committed value
func (d *Database) Get(key []byte) ([]byte, bool, error) {
	d.RLock()
	defer d.RUnlock()

	if nil == d.db {
		return nil, false, fault.ErrNotInitialised
	}
	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, false, nil
	}
	if nil != err {
		return nil, false, err
	}
	return value, true, nil
}

// Put - write a key immediately, bypassing any transaction
func (d *Database) Put(key []byte, value []byte) error {
	d.RLock()
	defer d.RUnlock()

	if nil == d.db {
		return fault.ErrNotInitialised
	}
	if d.readOnly {
		return fault.ErrReadOnly
	}
	return d.db.Put(key, value, nil)
}

// Delete - delete a key immediately, bypassing any transaction
func (d *Database) Delete(key []byte) error {
	d.RLock()
	defer d.RUnlock()

	if nil == d.db {
		return fault.ErrNotInitialised
	}
	if d.readOnly {
		return fault.ErrReadOnly
	}
	return d.db.Delete(key, nil)
}

// NewIterator - scan committed keys beginning with prefix
func (d *Database) NewIterator(prefix []byte) iterator.Iterator {
	d.RLock()
	defer d.RUnlock()

	if nil == d.db {
		return iterator.NewEmptyIterator(fault.ErrNotInitialised)
	}
	return d.db.NewIterator(ldb_util.BytesPrefix(prefix), nil)
}
