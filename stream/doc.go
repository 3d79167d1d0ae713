// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stream - conversion of typed keys and values to bytes
//
// encoding rules:
//
//	[]byte, string    varint64 length followed by the bytes
//	bool              one byte, 0x00 or 0x01
//	fixed integers    little endian, natural width
//	BinaryMarshaler   raw bytes, must be the last item
//	proto.Message     raw protobuf bytes, must be the last item
//	Tuple             concatenation of the items above
//
// so a string key is never empty, which keeps "\x00obfuscate_key"
// distinct from every application key
package stream
