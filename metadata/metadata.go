// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadata

import (
	"encoding/json"

	"github.com/bitmark-inc/storageitems/fault"
)

// Modifier - how an unset item reads
type Modifier int

// modifiers
const (
	None    Modifier = iota // absence is reported (or is a defect)
	Default                 // absence reads as a declared default
)

// String - name of the modifier
func (m Modifier) String() string {
	switch m {
	case None:
		return "None"
	case Default:
		return "Default"
	default:
		return "*unknown*"
	}
}

// MarshalText - convert modifier to text
func (m Modifier) MarshalText() ([]byte, error) {
	switch m {
	case None, Default:
		return []byte(m.String()), nil
	default:
		return nil, fault.ErrInvalidModifier
	}
}

// UnmarshalText - convert text to modifier
func (m *Modifier) UnmarshalText(s []byte) error {
	switch string(s) {
	case "None":
		*m = None
	case "Default":
		*m = Default
	default:
		return fault.ErrInvalidModifier
	}
	return nil
}

// MapType - key and value type names of a map
type MapType struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Shape - either a plain type or a map
type Shape struct {
	Plain string   `json:"plain,omitempty"`
	Map   *MapType `json:"map,omitempty"`
}

// Plain - shape of a value or list item
func Plain(typeName string) Shape {
	return Shape{
		Plain: typeName,
	}
}

// Map - shape of a map item
func Map(keyName string, valueName string) Shape {
	return Shape{
		Map: &MapType{
			Key:   keyName,
			Value: valueName,
		},
	}
}

// IsMap - true for a map shape
func (s Shape) IsMap() bool {
	return nil != s.Map
}

// String - readable form of the shape
func (s Shape) String() string {
	if nil != s.Map {
		return "map " + s.Map.Key + " => " + s.Map.Value
	}
	return s.Plain
}

// Function - description of one storage item
type Function struct {
	Name          string   `json:"name"`
	Modifier      Modifier `json:"modifier"`
	Type          Shape    `json:"type"`
	Documentation []string `json:"documentation"`
}

// Storage - description of all items of one storage module
type Storage struct {
	Prefix    string     `json:"prefix"`
	Functions []Function `json:"functions"`
}

// Function - find an item description by name
func (s Storage) Function(name string) (Function, bool) {
	for _, f := range s.Functions {
		if name == f.Name {
			return f, true
		}
	}
	return Function{}, false
}

// Names - item names in declaration order
func (s Storage) Names() []string {
	names := make([]string, len(s.Functions))
	for i, f := range s.Functions {
		names[i] = f.Name
	}
	return names
}

// MarshalJSON - JSON with absent documentation written as []
func (s Storage) MarshalJSON() ([]byte, error) {
	type plain Storage

	p := plain(s)
	if nil == p.Functions {
		p.Functions = []Function{}
	}
	functions := make([]Function, len(p.Functions))
	for i, f := range p.Functions {
		if nil == f.Documentation {
			f.Documentation = []string{}
		}
		functions[i] = f
	}
	p.Functions = functions
	return json.Marshal(p)
}

// Equal - structural comparison, nil and empty documentation are equal
func (s Storage) Equal(other Storage) bool {
	if s.Prefix != other.Prefix || len(s.Functions) != len(other.Functions) {
		return false
	}
	for i, f := range s.Functions {
		g := other.Functions[i]
		if f.Name != g.Name || f.Modifier != g.Modifier || f.Type.String() != g.Type.String() || f.Type.IsMap() != g.Type.IsMap() {
			return false
		}
		if len(f.Documentation) != len(g.Documentation) {
			return false
		}
		for j := range f.Documentation {
			if f.Documentation[j] != g.Documentation[j] {
				return false
			}
		}
	}
	return true
}
