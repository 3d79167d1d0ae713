// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package obfuscation - repeating XOR key applied to stored values
//
// this is not encryption, it only stops stored values from matching
// byte patterns that external scanners look for
package obfuscation

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/dbwrapper/fault"
)

// KeySize - number of bytes in an obfuscation key
const KeySize = 8

// Obfuscation - a fixed key, the zero value is the null key
type Obfuscation struct {
	key [KeySize]byte
}

// New - create from key bytes
//
// an empty key gives the null obfuscation
func New(key []byte) (Obfuscation, error) {
	o := Obfuscation{}
	if 0 == len(key) {
		return o, nil
	}
	if KeySize != len(key) {
		return o, fault.ErrKeyLength
	}
	copy(o.key[:], key)
	return o, nil
}

// Random - create from the system random source
func Random() (Obfuscation, error) {
	o := Obfuscation{}
	for o.IsNull() {
		if _, err := rand.Read(o.key[:]); nil != err {
			return Obfuscation{}, err
		}
	}
	return o, nil
}

// Apply - XOR the buffer in place as if it started at offset within
// the stored value
//
// applying twice with the same offset restores the input
func (o Obfuscation) Apply(buffer []byte, offset int) {
	if o.IsNull() {
		return
	}
	j := offset % KeySize
	if j < 0 {
		j += KeySize
	}
	for i := range buffer {
		buffer[i] ^= o.key[j]
		j += 1
		if KeySize == j {
			j = 0
		}
	}
}

// IsNull - true if applying this key changes nothing
func (o Obfuscation) IsNull() bool {
	return [KeySize]byte{} == o.key
}

// Bytes - copy of the key, empty for the null key
func (o Obfuscation) Bytes() []byte {
	if o.IsNull() {
		return []byte{}
	}
	b := make([]byte, KeySize)
	copy(b, o.key[:])
	return b
}

// String - hex form of the key
func (o Obfuscation) String() string {
	return hex.EncodeToString(o.key[:])
}
