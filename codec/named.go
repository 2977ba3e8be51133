// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/bitmark-inc/storageitems/fault"
)

// Named - a codec operating on interface{} values that can also
// convert its values to and from text
//
// used for storage items declared by configuration rather than code
type Named interface {
	Codec[any]
	Parse(text string) (any, error)
	Format(value any) string
	Zero() any
}

// Erase - wrap a typed codec with text conversion functions
func Erase[T any](c Codec[T], parse func(string) (T, error), format func(T) string) Named {
	return erased[T]{
		codec:  c,
		parse:  parse,
		format: format,
	}
}

type erased[T any] struct {
	codec  Codec[T]
	parse  func(string) (T, error)
	format func(T) string
}

func (e erased[T]) Name() string { return e.codec.Name() }

func (e erased[T]) Append(buffer []byte, value any) []byte {
	v, ok := value.(T)
	if !ok {
		fault.Panicf("codec: %s  cannot encode value of type: %T", e.codec.Name(), value)
	}
	return e.codec.Append(buffer, v)
}

func (e erased[T]) DecodePrefix(buffer []byte) (any, int, error) {
	v, n, err := e.codec.DecodePrefix(buffer)
	if nil != err {
		return nil, 0, err
	}
	return v, n, nil
}

func (e erased[T]) Parse(text string) (any, error) {
	v, err := e.parse(text)
	if nil != err {
		return nil, err
	}
	return v, nil
}

func (e erased[T]) Format(value any) string {
	v, ok := value.(T)
	if !ok {
		return "<" + e.codec.Name() + "?>"
	}
	return e.format(v)
}

func (e erased[T]) Zero() any {
	var zero T
	return zero
}

var registry struct {
	sync.RWMutex
	codecs map[string]Named
}

// Register - make a named codec available to Lookup
func Register(n Named) error {
	name := n.Name()
	if "" == name {
		return fault.ErrCodecNameMissing
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.codecs[name]; ok {
		return fault.ErrDuplicateCodec
	}
	registry.codecs[name] = n
	return nil
}

// Lookup - find a codec by its type name
func Lookup(name string) (Named, error) {
	registry.RLock()
	defer registry.RUnlock()

	n, ok := registry.codecs[name]
	if !ok {
		return nil, fault.ErrUnknownCodec
	}
	return n, nil
}

// Names - all registered type names in sorted order
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()

	names := make([]string, 0, len(registry.codecs))
	for name := range registry.codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	registry.codecs = make(map[string]Named)

	builtin := []Named{
		Erase(U8, parseUnsigned[uint8](8), formatUnsigned[uint8]),
		Erase(U16, parseUnsigned[uint16](16), formatUnsigned[uint16]),
		Erase(U32, parseUnsigned[uint32](32), formatUnsigned[uint32]),
		Erase(U64, parseUnsigned[uint64](64), formatUnsigned[uint64]),
		Erase(Bool, strconv.ParseBool, strconv.FormatBool),
		Erase(Bytes, parseHex, hex.EncodeToString),
		Erase(String, parseString, strconv.Quote),
		Erase(Array32, parseArray32, func(a [32]byte) string { return hex.EncodeToString(a[:]) }),
	}
	for _, n := range builtin {
		fault.PanicIfError("codec register: "+n.Name(), Register(n))
	}
}

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func parseUnsigned[T unsigned](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		n, err := strconv.ParseUint(s, 0, bits)
		if nil != err {
			return 0, fault.ErrInvalidText
		}
		return T(n), nil
	}
}

func formatUnsigned[T unsigned](n T) string {
	return strconv.FormatUint(uint64(n), 10)
}

// quoted text as printed by Format, anything else is taken literally
func parseString(s string) (string, error) {
	if strings.HasPrefix(s, `"`) {
		if u, err := strconv.Unquote(s); nil == err {
			return u, nil
		}
	}
	return s, nil
}

func parseHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if nil != err {
		return nil, fault.ErrInvalidText
	}
	return b, nil
}

func parseArray32(s string) ([32]byte, error) {
	var a [32]byte
	b, err := parseHex(s)
	if nil != err {
		return a, err
	}
	if len(b) != len(a) {
		return a, fault.ErrInvalidLength
	}
	copy(a[:], b)
	return a, nil
}
