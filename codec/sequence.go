// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

// Sequence - an ordered run of elements sharing one codec
// stored as Varint64(count) ++ (concat elements)
func Sequence[T any](element Codec[T]) Codec[[]T] {
	return sequenceCodec[T]{element: element}
}

type sequenceCodec[T any] struct {
	element Codec[T]
}

func (s sequenceCodec[T]) Name() string { return "[]" + s.element.Name() }

func (s sequenceCodec[T]) Append(buffer []byte, value []T) []byte {
	buffer = AppendVarint64(buffer, uint64(len(value)))
	for _, e := range value {
		buffer = s.element.Append(buffer, e)
	}
	return buffer
}

func (s sequenceCodec[T]) DecodePrefix(buffer []byte) ([]T, int, error) {
	count, n, err := ReadVarint64(buffer)
	if nil != err {
		return nil, 0, err
	}

	// count is untrusted so do not let it size the allocation
	capacity := uint64(len(buffer) - n)
	if count < capacity {
		capacity = count
	}

	value := make([]T, 0, capacity)
	for i := uint64(0); i < count; i += 1 {
		e, used, err := s.element.DecodePrefix(buffer[n:])
		if nil != err {
			return nil, 0, err
		}
		value = append(value, e)
		n += used
	}
	return value, n, nil
}
