// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"sync"

	"github.com/bitmark-inc/storageitems/fault"
	"github.com/bitmark-inc/storageitems/metadata"
)

// Module - a namespace of storage items
type Module struct {
	sync.Mutex
	name      string
	functions []metadata.Function
	declared  map[string]struct{}
	keys      map[string]string // physical key → item name
}

// NewModule - create an empty namespace
func NewModule(name string) *Module {
	if "" == name {
		fault.Panicf("schema: %s", fault.ErrEmptyModuleName)
	}
	return &Module{
		name:     name,
		declared: make(map[string]struct{}),
		keys:     make(map[string]string),
	}
}

// Name - the namespace
func (m *Module) Name() string {
	return m.name
}

// DerivedKey - the key an item of this module gets without an explicit Key
func (m *Module) DerivedKey(item string) []byte {
	return []byte(m.name + " " + item)
}

// Metadata - descriptions of all declared items in declaration order
func (m *Module) Metadata() metadata.Storage {
	m.Lock()
	defer m.Unlock()

	functions := make([]metadata.Function, len(m.functions))
	for i, f := range m.functions {
		f.Documentation = append([]string{}, f.Documentation...)
		functions[i] = f
	}
	return metadata.Storage{
		Prefix:    m.name,
		Functions: functions,
	}
}

// record an item and return its key
func (m *Module) declare(name string, shape metadata.Shape, modifier metadata.Modifier, options []Option) []byte {
	s := settings{}
	for _, option := range options {
		option(&s)
	}

	m.Lock()
	defer m.Unlock()

	if "" == name {
		fault.Panicf("schema: module: %q  %s", m.name, fault.ErrEmptyItemName)
	}
	if _, ok := m.declared[name]; ok {
		fault.Panicf("schema: module: %q  item: %q  %s", m.name, name, fault.ErrDuplicateItem)
	}

	key := s.key
	if nil == key {
		key = m.DerivedKey(name)
	}
	if other, ok := m.keys[string(key)]; ok {
		fault.Panicf("schema: module: %q  item: %q  key: %x  used by: %q  %s", m.name, name, key, other, fault.ErrDuplicateItem)
	}
	m.declared[name] = struct{}{}
	m.keys[string(key)] = name

	m.functions = append(m.functions, metadata.Function{
		Name:          name,
		Modifier:      modifier,
		Type:          shape,
		Documentation: s.documentation,
	})

	return key
}

func (m *Module) isDeclared(name string) bool {
	m.Lock()
	defer m.Unlock()

	_, ok := m.declared[name]
	return ok
}

func (m *Module) isKeyUsed(key []byte) bool {
	m.Lock()
	defer m.Unlock()

	_, ok := m.keys[string(key)]
	return ok
}
