// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/storageitems/codec"
	"github.com/bitmark-inc/storageitems/fault"
	"github.com/bitmark-inc/storageitems/state"
	"github.com/bitmark-inc/storageitems/storage"
)

// Dynamic - a declared item whose keys and values are handled as text
//
// the key text selects the map entry or list element; it must be
// empty for a value, and an empty key addresses a whole list
type Dynamic struct {
	declaration Declaration
	keyCodec    codec.Named
	valueCodec  codec.Named

	physical func(k any) []byte
	read     func(s storage.Store, k any) (any, bool, error)
	write    func(s storage.Store, k any, v any) error
	remove   func(s storage.Store, k any) error
	list     *state.List[any]
}

func newDynamic(m *Module, d Declaration, r resolved) *Dynamic {
	item := &Dynamic{
		declaration: d,
		keyCodec:    r.key,
		valueCodec:  r.value,
	}
	options := d.options()

	switch d.Kind {
	case KindValue:
		item.bindValue(m, r, options)
	case KindMap:
		item.bindMap(m, r, options)
	case KindList:
		l := List[any](m, d.Name, r.value, options...)
		item.list = &l
		item.physical = func(k any) []byte {
			if nil == k {
				return l.LenKey()
			}
			return l.KeyFor(k.(uint32))
		}
		item.read = func(s storage.Store, k any) (any, bool, error) {
			return l.Get(s, k.(uint32))
		}
		item.write = func(s storage.Store, k any, v any) error {
			return l.SetItem(s, k.(uint32), v)
		}
		item.remove = func(s storage.Store, _ any) error {
			return l.Clear(s)
		}
	}
	return item
}

func (item *Dynamic) bindValue(m *Module, r resolved, options []Option) {
	name := item.declaration.Name

	var v state.Value[any]
	switch r.modifier {
	case ModifierDefault:
		dv := DefaultValue[any](m, name, r.value, r.def, options...)
		v = dv.Optional()
		item.read = func(s storage.Store, _ any) (any, bool, error) {
			value, err := dv.Get(s)
			return value, nil == err, err
		}
	case ModifierRequired:
		rv := RequiredValue[any](m, name, r.value, options...)
		v = rv.Optional()
		item.read = func(s storage.Store, _ any) (any, bool, error) {
			value, err := rv.Get(s)
			return value, nil == err, err
		}
	default:
		if r.hasDef {
			v = ValueOr[any](m, name, r.value, r.def, options...)
		} else {
			v = Value[any](m, name, r.value, options...)
		}
		item.read = func(s storage.Store, _ any) (any, bool, error) {
			return v.Get(s)
		}
	}

	item.physical = func(_ any) []byte {
		return v.Key()
	}
	item.write = func(s storage.Store, _ any, value any) error {
		return v.Put(s, value)
	}
	item.remove = func(s storage.Store, _ any) error {
		return v.Kill(s)
	}
}

func (item *Dynamic) bindMap(m *Module, r resolved, options []Option) {
	name := item.declaration.Name

	var mp state.Map[any, any]
	switch r.modifier {
	case ModifierDefault:
		dm := DefaultMap[any, any](m, name, r.key, r.value, r.def, options...)
		mp = dm.Map
		item.read = func(s storage.Store, k any) (any, bool, error) {
			value, err := dm.Get(s, k)
			return value, nil == err, err
		}
	case ModifierRequired:
		rm := RequiredMap[any, any](m, name, r.key, r.value, options...)
		mp = rm.Map
		item.read = func(s storage.Store, k any) (any, bool, error) {
			value, err := rm.Get(s, k)
			return value, nil == err, err
		}
	default:
		mp = Map[any, any](m, name, r.key, r.value, options...)
		item.read = func(s storage.Store, k any) (any, bool, error) {
			return mp.Get(s, k)
		}
	}

	item.physical = func(k any) []byte {
		if nil == k {
			return mp.Prefix()
		}
		return mp.KeyFor(k)
	}
	item.write = func(s storage.Store, k any, value any) error {
		return mp.Insert(s, k, value)
	}
	item.remove = func(s storage.Store, k any) error {
		return mp.Remove(s, k)
	}
}

// Name - the item name
func (item *Dynamic) Name() string {
	return item.declaration.Name
}

// Kind - value, map or list
func (item *Dynamic) Kind() string {
	return item.declaration.Kind
}

// Declaration - the declaration the item was built from
func (item *Dynamic) Declaration() Declaration {
	return item.declaration
}

// Prefix - the key of a value, or the common prefix of a map or list
func (item *Dynamic) Prefix() []byte {
	if nil != item.list {
		return item.list.Prefix()
	}
	return item.physical(nil)
}

// parse key text, nil means the item itself (value, map prefix, whole list)
func (item *Dynamic) parseKey(keyText string) (any, error) {
	switch item.declaration.Kind {
	case KindMap:
		if "" == keyText {
			return nil, nil
		}
		return item.keyCodec.Parse(keyText)
	case KindList:
		if "" == keyText {
			return nil, nil
		}
		n, err := strconv.ParseUint(keyText, 0, 32)
		if nil != err {
			return nil, fault.ErrInvalidText
		}
		return uint32(n), nil
	default:
		if "" != keyText {
			return nil, fault.ErrInvalidText
		}
		return nil, nil
	}
}

// parse key text that must select a single entry
func (item *Dynamic) parseEntry(keyText string) (any, error) {
	k, err := item.parseKey(keyText)
	if nil != err {
		return nil, err
	}
	if nil == k && KindValue != item.declaration.Kind {
		return nil, fault.ErrInvalidText
	}
	return k, nil
}

// Key - the physical key (a map prefix or list length key for empty key text)
func (item *Dynamic) Key(keyText string) ([]byte, error) {
	k, err := item.parseKey(keyText)
	if nil != err {
		return nil, err
	}
	return item.physical(k), nil
}

// Get - read an entry as text, empty key text on a list reads all elements
func (item *Dynamic) Get(s storage.Store, keyText string) (string, bool, error) {
	k, err := item.parseKey(keyText)
	if nil != err {
		return "", false, err
	}

	if KindList == item.declaration.Kind && nil == k {
		items, err := item.list.Items(s)
		if nil != err {
			return "", false, err
		}
		text := make([]string, len(items))
		for i, v := range items {
			text[i] = item.valueCodec.Format(v)
		}
		return "[" + strings.Join(text, ", ") + "]", true, nil
	}
	if nil == k && KindMap == item.declaration.Kind {
		return "", false, fault.ErrInvalidText
	}

	value, found, err := item.read(s, k)
	if nil != err || !found {
		return "", false, err
	}
	return item.valueCodec.Format(value), true, nil
}

// Set - write an entry from text, list elements must be below the length
func (item *Dynamic) Set(s storage.Store, keyText string, valueText string) error {
	k, err := item.parseEntry(keyText)
	if nil != err {
		return err
	}
	value, err := item.valueCodec.Parse(valueText)
	if nil != err {
		return err
	}
	return item.write(s, k, value)
}

// Delete - remove an entry, empty key text on a list clears it
func (item *Dynamic) Delete(s storage.Store, keyText string) error {
	if KindList == item.declaration.Kind {
		if "" != keyText {
			return fault.ErrInvalidText
		}
		return item.remove(s, nil)
	}

	k, err := item.parseEntry(keyText)
	if nil != err {
		return err
	}
	return item.remove(s, k)
}
