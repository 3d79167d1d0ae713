// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// errors are grouped into classes so that callers can decide how to
// react without knowing the individual error:
//
//	DecodeError - stored bytes do not decode to the requested type,
//	              recoverable, nothing on disk was touched
//	FatalError  - the storage engine failed (corruption, I/O, disk
//	              full), the handle must not be used any further
//	others      - argument, state and lookup problems
package fault
