// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/bitmark-inc/storageitems/codec"
	"github.com/bitmark-inc/storageitems/metadata"
	"github.com/bitmark-inc/storageitems/state"
)

// Value - an optional value
func Value[T any](m *Module, name string, value codec.Codec[T], options ...Option) state.Value[T] {
	key := m.declare(name, metadata.Plain(value.Name()), metadata.None, options)
	return state.NewValue(key, value)
}

// ValueOr - an optional value that reads as fallback while unset
func ValueOr[T any](m *Module, name string, value codec.Codec[T], fallback T, options ...Option) state.Value[T] {
	key := m.declare(name, metadata.Plain(value.Name()), metadata.Default, options)
	return state.NewValue(key, value).WithFallback(fallback)
}

// DefaultValue - a value that reads as def while unset
func DefaultValue[T any](m *Module, name string, value codec.Codec[T], def T, options ...Option) state.DefaultValue[T] {
	key := m.declare(name, metadata.Plain(value.Name()), metadata.Default, options)
	return state.NewDefaultValue(key, value, def)
}

// RequiredValue - a value that must be set before it is read
func RequiredValue[T any](m *Module, name string, value codec.Codec[T], options ...Option) state.RequiredValue[T] {
	key := m.declare(name, metadata.Plain(value.Name()), metadata.None, options)
	return state.NewRequiredValue(key, value)
}

// Map - a map of optional values
func Map[K any, V any](m *Module, name string, key codec.Codec[K], value codec.Codec[V], options ...Option) state.Map[K, V] {
	prefix := m.declare(name, metadata.Map(key.Name(), value.Name()), metadata.None, options)
	return state.NewMap(prefix, key, value)
}

// DefaultMap - a map whose unset entries read as def
func DefaultMap[K any, V any](m *Module, name string, key codec.Codec[K], value codec.Codec[V], def V, options ...Option) state.DefaultMap[K, V] {
	prefix := m.declare(name, metadata.Map(key.Name(), value.Name()), metadata.Default, options)
	return state.NewDefaultMap(prefix, key, value, def)
}

// RequiredMap - a map whose accessed entries must be set
func RequiredMap[K any, V any](m *Module, name string, key codec.Codec[K], value codec.Codec[V], options ...Option) state.RequiredMap[K, V] {
	prefix := m.declare(name, metadata.Map(key.Name(), value.Name()), metadata.None, options)
	return state.NewRequiredMap(prefix, key, value)
}

// List - a list, an unset list reads as empty
func List[T any](m *Module, name string, value codec.Codec[T], options ...Option) state.List[T] {
	prefix := m.declare(name, metadata.Plain(ListTypeName(value.Name())), metadata.Default, options)
	return state.NewList(prefix, value)
}

// ListTypeName - the metadata type of a list of elements
func ListTypeName(element string) string {
	return "list[" + element + "]"
}
