// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

type settings struct {
	key           []byte
	documentation []string
}

// Option - modify a declaration
type Option func(*settings)

// Doc - documentation lines, repeated options accumulate
func Doc(lines ...string) Option {
	return func(s *settings) {
		s.documentation = append(s.documentation, lines...)
	}
}

// Key - use exactly this key (or map/list prefix) instead of the
// derived one
func Key(key []byte) Option {
	k := make([]byte, len(key))
	copy(k, key)
	return func(s *settings) {
		s.key = k
	}
}
