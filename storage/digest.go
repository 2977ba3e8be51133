// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Digest - SHA3-256 of all keys under a prefix
type Digest [32]byte

// String - hex form of the digest
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// DigestOf - fingerprint the keyspace beneath prefix
//
// each key and value is hashed with a 4 byte big endian length so
// that different splits of the same bytes give different digests
func DigestOf(source Iterable, prefix []byte) (Digest, int, error) {
	h := sha3.New256()
	n := 0

	iter := source.NewIterator(prefix)
	defer iter.Release()

	length := make([]byte, 4)
	for iter.Next() {
		key := iter.Key()
		value := iter.Value()

		binary.BigEndian.PutUint32(length, uint32(len(key)))
		h.Write(length)
		h.Write(key)
		binary.BigEndian.PutUint32(length, uint32(len(value)))
		h.Write(length)
		h.Write(value)
		n += 1
	}

	digest := Digest{}
	if err := iter.Error(); nil != err {
		return digest, 0, err
	}
	copy(digest[:], h.Sum(nil))
	return digest, n, nil
}
