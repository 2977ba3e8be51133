// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// RecordError is reserved for defects: bytes in the store that do not
// match the declared type of their item, or data that an invariant
// guarantees is present but is not.  Callers must not treat these as
// a normal "not found".
package fault
