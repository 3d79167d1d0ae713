// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - typed key/value access to an embedded database
//
// keys and values are converted to bytes by the stream package, values
// are XOR obfuscated before they reach the engine
//
// Reserved records:
//
//	"\x00obfuscate_key"        - obfuscation key, never obfuscated
//	                             key:  varint(14) ++ 0x00 ++ "obfuscate_key"
//	                             data: varint(8) ++ 8 key bytes
//
// Partition aware engine only:
//
//	BE32(0) ++ "partition"     - index of the partition being filled
//	                             data: BE32(index)
//	BE32(index) ++ key         - sorted records, empty data is a tombstone
//
// Backends:
//
//	leveldb           - goleveldb, the default
//	pebble            - cockroachdb pebble
//	bolt              - bbolt
//	bolt-partitioned  - bbolt with sorted writes and partitioned reads
package storage
