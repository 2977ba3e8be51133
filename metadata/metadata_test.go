// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadata_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/storageitems/fault"
	"github.com/bitmark-inc/storageitems/metadata"
)

var sample = metadata.Storage{
	Prefix: "Balances",
	Functions: []metadata.Function{
		{
			Name:          "TotalIssuance",
			Modifier:      metadata.Default,
			Type:          metadata.Plain("u64"),
			Documentation: []string{" total tokens in existence"},
		},
		{
			Name:     "FreeBalance",
			Modifier: metadata.None,
			Type:     metadata.Map("[32]byte", "u64"),
		},
	},
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(sample)
	assert.Nil(t, err, "marshal error")

	expected := `{"prefix":"Balances","functions":[` +
		`{"name":"TotalIssuance","modifier":"Default","type":{"plain":"u64"},"documentation":[" total tokens in existence"]},` +
		`{"name":"FreeBalance","modifier":"None","type":{"map":{"key":"[32]byte","value":"u64"}},"documentation":[]}` +
		`]}`
	assert.Equal(t, expected, string(b), "wrong JSON")

	var decoded metadata.Storage
	err = json.Unmarshal(b, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assert.True(t, sample.Equal(decoded), "decoded differs: %+v", decoded)
}

func TestEmptyJSON(t *testing.T) {
	b, err := json.Marshal(metadata.Storage{Prefix: "Empty"})
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"prefix":"Empty","functions":[]}`, string(b), "wrong JSON")
}

func TestModifierText(t *testing.T) {
	var m metadata.Modifier

	err := m.UnmarshalText([]byte("Default"))
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, metadata.Default, m, "wrong modifier")

	err = m.UnmarshalText([]byte("Required"))
	assert.Equal(t, fault.ErrInvalidModifier, err, "wrong error")

	_, err = metadata.Modifier(7).MarshalText()
	assert.Equal(t, fault.ErrInvalidModifier, err, "wrong error")
}

func TestLookup(t *testing.T) {
	f, ok := sample.Function("FreeBalance")
	assert.True(t, ok, "function not found")
	assert.True(t, f.Type.IsMap(), "not a map")
	assert.Equal(t, "map [32]byte => u64", f.Type.String(), "wrong shape")

	_, ok = sample.Function("Missing")
	assert.False(t, ok, "missing function found")

	assert.Equal(t, []string{"TotalIssuance", "FreeBalance"}, sample.Names(), "wrong names")
}

func TestEqual(t *testing.T) {
	other := sample
	other.Functions = append([]metadata.Function{}, sample.Functions...)
	other.Functions[0].Type = metadata.Plain("u32")
	assert.False(t, sample.Equal(other), "different type compared equal")

	// a map and a plain type with the same text are different shapes
	a := metadata.Storage{Functions: []metadata.Function{{Name: "x", Type: metadata.Plain("map k => v")}}}
	b := metadata.Storage{Functions: []metadata.Function{{Name: "x", Type: metadata.Map("k", "v")}}}
	assert.False(t, a.Equal(b), "shapes compared equal")
}
