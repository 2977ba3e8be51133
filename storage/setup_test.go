// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/storageitems/storage"
)

var testingDirName string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "storage-test-")
	if nil != err {
		panic(fmt.Sprintf("temporary directory error: %s", err))
	}
	testingDirName = dir

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// open a fresh read/write database unique to the test
func setupDatabase(t *testing.T) (*storage.Database, string) {
	name := filepath.Join(t.TempDir(), "state.leveldb")
	db, err := storage.Open(name, storage.ReadWrite)
	if nil != err {
		t.Fatalf("database open error: %s", err)
	}
	return db, name
}

// a string data item
type stringElement struct {
	key   string
	value string
}

func fill(t *testing.T, s storage.Store, input []stringElement) {
	for _, e := range input {
		if err := s.Put([]byte(e.key), []byte(e.value)); nil != err {
			t.Fatalf("put: %q  error: %s", e.key, err)
		}
	}
}

var sampleElements = []stringElement{
	{"b:key-two", "data-two"},
	{"a:other", "data-other"},
	{"b:key-one", "data-one"},
	{"b:key-three", "data-three"},
	{"c:last", "data-last"},
}
