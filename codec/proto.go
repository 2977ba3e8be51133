// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/gogo/protobuf/proto"

	"github.com/bitmark-inc/storageitems/fault"
)

// Proto - a protobuf message stored as Varint64(length) ++ message
//
// messages are marshalled deterministically (map fields sorted) so
// that equal messages always produce equal bytes, which is required
// when a message is used as a map key
func Proto[M proto.Message](factory func() M) Codec[M] {
	return protoCodec[M]{
		name:    proto.MessageName(factory()),
		factory: factory,
	}
}

type protoCodec[M proto.Message] struct {
	name    string
	factory func() M
}

func (p protoCodec[M]) Name() string { return p.name }

func (p protoCodec[M]) Append(buffer []byte, value M) []byte {
	b := proto.NewBuffer(nil)
	b.SetDeterministic(true)
	err := b.Marshal(value)
	fault.PanicIfError("proto codec: "+p.name, err)

	data := b.Bytes()
	buffer = AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

func (p protoCodec[M]) DecodePrefix(buffer []byte) (M, int, error) {
	length, n, err := readLength(buffer)
	if nil != err {
		var zero M
		return zero, 0, err
	}
	value := p.factory()
	err = proto.Unmarshal(buffer[n:n+length], value)
	if nil != err {
		var zero M
		return zero, 0, err
	}
	return value, n + length, nil
}
