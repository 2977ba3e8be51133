// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/storageitems/codec"
	"github.com/bitmark-inc/storageitems/metadata"
	"github.com/bitmark-inc/storageitems/schema"
	"github.com/bitmark-inc/storageitems/storage"
)

func TestMetadataInDeclarationOrder(t *testing.T) {
	m := schema.NewModule("TestStorage")

	schema.Value(m, "U32", codec.U32, schema.Doc(" Hello, this is doc!"))
	schema.Value(m, "PUBU32", codec.U32)
	schema.ValueOr(m, "U32MYDEF", codec.U32, 3)
	schema.DefaultValue(m, "GETU32", codec.U32, 0)
	schema.RequiredValue(m, "GETU32REQUIRED", codec.U32)
	schema.Map(m, "MAPU32", codec.U32, codec.String, schema.Doc(" Hello, this is doc!", " More doc"))
	schema.DefaultMap(m, "GETMAPU32MYDEF", codec.U32, codec.String, "map")
	schema.RequiredMap(m, "REQMAP", codec.Array32, codec.U64)
	schema.List(m, "LIST", codec.U64)

	expected := metadata.Storage{
		Prefix: "TestStorage",
		Functions: []metadata.Function{
			{Name: "U32", Modifier: metadata.None, Type: metadata.Plain("u32"), Documentation: []string{" Hello, this is doc!"}},
			{Name: "PUBU32", Modifier: metadata.None, Type: metadata.Plain("u32")},
			{Name: "U32MYDEF", Modifier: metadata.Default, Type: metadata.Plain("u32")},
			{Name: "GETU32", Modifier: metadata.Default, Type: metadata.Plain("u32")},
			{Name: "GETU32REQUIRED", Modifier: metadata.None, Type: metadata.Plain("u32")},
			{Name: "MAPU32", Modifier: metadata.None, Type: metadata.Map("u32", "string"), Documentation: []string{" Hello, this is doc!", " More doc"}},
			{Name: "GETMAPU32MYDEF", Modifier: metadata.Default, Type: metadata.Map("u32", "string")},
			{Name: "REQMAP", Modifier: metadata.None, Type: metadata.Map("[32]byte", "u64")},
			{Name: "LIST", Modifier: metadata.Default, Type: metadata.Plain("list[u64]")},
		},
	}

	actual := m.Metadata()
	assert.True(t, expected.Equal(actual), "wrong metadata: %+v", actual)
	assert.Equal(t, expected.Names(), actual.Names(), "wrong order")
}

func TestDerivedKeys(t *testing.T) {
	m := schema.NewModule("Balances")

	v := schema.Value(m, "TotalIssuance", codec.U64)
	assert.Equal(t, []byte("Balances TotalIssuance"), v.Key(), "wrong value key")

	mp := schema.Map(m, "FreeBalance", codec.U32, codec.U64)
	assert.Equal(t, []byte("Balances FreeBalance"), mp.Prefix(), "wrong map prefix")
	assert.Equal(t, []byte("Balances FreeBalance\x00\x00\x00\x01"), mp.KeyFor(1), "wrong entry key")

	l := schema.List(m, "Authorities", codec.Array32)
	assert.Equal(t, []byte("Balances Authorities"), l.Prefix(), "wrong list prefix")
	assert.Equal(t, []byte("Balances Authoritieslen"), l.LenKey(), "wrong length key")

	e := schema.Value(m, "Explicit", codec.U32, schema.Key([]byte("a")))
	assert.Equal(t, []byte("a"), e.Key(), "explicit key ignored")
}

func TestExplicitKeysMatchPlainAccessors(t *testing.T) {
	s := storage.NewMemoryStore()
	m := schema.NewModule("Test")

	value := schema.Value(m, "Value", codec.U32, schema.Key([]byte("a")))
	list := schema.List(m, "List", codec.U64, schema.Key([]byte("b:")))
	entries := schema.Map(m, "Map", codec.U32, codec.Array32, schema.Key([]byte("c:")))

	_ = value.Put(s, 100000)
	_ = list.SetItems(s, []uint64{0, 2, 4, 6, 8})
	_ = entries.Insert(s, 5, [32]byte{1})

	raw, found, _ := s.Get([]byte("a"))
	assert.True(t, found, "value key not used")
	assert.Equal(t, []byte{0x00, 0x01, 0x86, 0xa0}, raw, "wrong value bytes")

	raw, found, _ = s.Get([]byte("b:len"))
	assert.True(t, found, "list length key not used")
	assert.Equal(t, []byte{0, 0, 0, 5}, raw, "wrong length bytes")

	found, _ = s.Has([]byte{'c', ':', 0, 0, 0, 5})
	assert.True(t, found, "map entry key not used")
}

func TestDeclarationErrorsPanic(t *testing.T) {
	assert.Panics(t, func() {
		schema.NewModule("")
	}, "empty module name accepted")

	m := schema.NewModule("Test")
	schema.Value(m, "Once", codec.U32)

	assert.Panics(t, func() {
		schema.Value(m, "Once", codec.U64)
	}, "duplicate item accepted")

	assert.Panics(t, func() {
		schema.List(m, "", codec.U64)
	}, "empty item name accepted")

	assert.Equal(t, 1, len(m.Metadata().Functions), "failed declarations recorded")
}

func TestKeyCollisionsPanic(t *testing.T) {
	m := schema.NewModule("Test")
	schema.Value(m, "First", codec.U32, schema.Key([]byte("a")))
	schema.Value(m, "Second", codec.U32)

	assert.Panics(t, func() {
		schema.Map(m, "Third", codec.U32, codec.U64, schema.Key([]byte("a")))
	}, "shared explicit key accepted")

	assert.Panics(t, func() {
		schema.List(m, "Fourth", codec.U64, schema.Key([]byte("Test Second")))
	}, "explicit key equal to a derived key accepted")

	assert.Equal(t, 2, len(m.Metadata().Functions), "failed declarations recorded")
}

func TestMetadataIsACopy(t *testing.T) {
	m := schema.NewModule("Test")
	schema.Value(m, "Doc", codec.U32, schema.Doc("line"))

	md := m.Metadata()
	md.Functions[0].Documentation[0] = "changed"
	md.Functions[0].Name = "changed"

	again := m.Metadata()
	assert.Equal(t, "Doc", again.Functions[0].Name, "name changed through copy")
	assert.Equal(t, []string{"line"}, again.Functions[0].Documentation, "documentation changed through copy")
}
