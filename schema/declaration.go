// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"

	"github.com/bitmark-inc/storageitems/codec"
	"github.com/bitmark-inc/storageitems/fault"
)

// item kinds
const (
	KindValue = "value"
	KindMap   = "map"
	KindList  = "list"
)

// query modifiers
const (
	ModifierOptional = "optional"
	ModifierDefault  = "default"
	ModifierRequired = "required"
)

// Declaration - one storage item described as data
//
// type names are those of registered codecs (see codec.Names)
type Declaration struct {
	Name          string   `gluamapper:"name" json:"name"`
	Kind          string   `gluamapper:"kind" json:"kind"`
	Key           string   `gluamapper:"key" json:"key,omitempty"`
	KeyType       string   `gluamapper:"key_type" json:"key_type,omitempty"`
	Type          string   `gluamapper:"type" json:"type"`
	Modifier      string   `gluamapper:"modifier" json:"modifier,omitempty"`
	Default       string   `gluamapper:"default" json:"default,omitempty"`
	Documentation []string `gluamapper:"documentation" json:"documentation,omitempty"`
}

// resolved codecs and default of a validated declaration
type resolved struct {
	key      codec.Named
	value    codec.Named
	modifier string
	def      any
	hasDef   bool
}

// check a declaration and look up everything it names
func (d Declaration) resolve() (resolved, error) {
	r := resolved{
		modifier: d.Modifier,
	}

	if "" == d.Name {
		return r, fault.ErrEmptyItemName
	}

	value, err := codec.Lookup(d.Type)
	if nil != err {
		return r, fmt.Errorf("item: %q  type: %q: %w", d.Name, d.Type, err)
	}
	r.value = value

	switch d.Kind {
	case KindValue, KindMap:
		if "" == r.modifier {
			r.modifier = ModifierOptional
		}
	case KindList:
		if "" != d.Modifier || "" != d.Default {
			return r, fmt.Errorf("item: %q  lists have no modifier: %w", d.Name, fault.ErrInvalidModifier)
		}
	default:
		return r, fmt.Errorf("item: %q  kind: %q: %w", d.Name, d.Kind, fault.ErrInvalidItemKind)
	}

	if KindMap == d.Kind {
		if "" == d.KeyType {
			return r, fmt.Errorf("item: %q: %w", d.Name, fault.ErrMapKeyTypeMissing)
		}
		key, err := codec.Lookup(d.KeyType)
		if nil != err {
			return r, fmt.Errorf("item: %q  key type: %q: %w", d.Name, d.KeyType, err)
		}
		r.key = key
	} else if "" != d.KeyType {
		return r, fmt.Errorf("item: %q  key type on %s: %w", d.Name, d.Kind, fault.ErrInvalidItemKind)
	}

	switch r.modifier {
	case "":
	case ModifierOptional:
		if "" != d.Default {
			if KindMap == d.Kind {
				return r, fmt.Errorf("item: %q  optional map with default: %w", d.Name, fault.ErrInvalidModifier)
			}
			r.hasDef = true
		}
	case ModifierDefault:
		r.hasDef = true
	case ModifierRequired:
		if "" != d.Default {
			return r, fmt.Errorf("item: %q  default on required item: %w", d.Name, fault.ErrInvalidModifier)
		}
	default:
		return r, fmt.Errorf("item: %q  modifier: %q: %w", d.Name, d.Modifier, fault.ErrInvalidModifier)
	}

	if r.hasDef {
		if "" == d.Default {
			r.def = value.Zero()
		} else {
			r.def, err = value.Parse(d.Default)
			if nil != err {
				return r, fmt.Errorf("item: %q  default: %q: %w", d.Name, d.Default, err)
			}
		}
	}
	return r, nil
}

func (d Declaration) options() []Option {
	options := []Option{Doc(d.Documentation...)}
	if "" != d.Key {
		options = append(options, Key([]byte(d.Key)))
	}
	return options
}

// the physical key (or prefix) the item will be declared with
func (d Declaration) key(m *Module) []byte {
	if "" != d.Key {
		return []byte(d.Key)
	}
	return m.DerivedKey(d.Name)
}

// Catalog - a module built from declarations with its items
type Catalog struct {
	*Module
	items  []*Dynamic
	byName map[string]*Dynamic
}

// Build - validate declarations and declare every item in order
func Build(name string, declarations []Declaration) (*Catalog, error) {
	if "" == name {
		return nil, fault.ErrEmptyModuleName
	}

	m := NewModule(name)
	c := &Catalog{
		Module: m,
		items:  make([]*Dynamic, 0, len(declarations)),
		byName: make(map[string]*Dynamic),
	}

	for _, d := range declarations {
		r, err := d.resolve()
		if nil != err {
			return nil, fmt.Errorf("module: %q  %w", name, err)
		}
		if m.isDeclared(d.Name) {
			return nil, fmt.Errorf("module: %q  item: %q: %w", name, d.Name, fault.ErrDuplicateItem)
		}

		if m.isKeyUsed(d.key(m)) {
			return nil, fmt.Errorf("module: %q  item: %q  key: %x: %w", name, d.Name, d.key(m), fault.ErrDuplicateItem)
		}

		item := newDynamic(m, d, r)
		c.items = append(c.items, item)
		c.byName[d.Name] = item
	}
	return c, nil
}

// Items - all items in declaration order
func (c *Catalog) Items() []*Dynamic {
	return append([]*Dynamic{}, c.items...)
}

// Item - find an item by name
func (c *Catalog) Item(name string) (*Dynamic, error) {
	item, ok := c.byName[name]
	if !ok {
		return nil, fault.ErrStorageItemNotFound
	}
	return item, nil
}
