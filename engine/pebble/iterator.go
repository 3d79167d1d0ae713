// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pebble

import (
	"github.com/cockroachdb/pebble"
)

// Iterator - wraps a pebble iterator
type Iterator struct {
	iter   *pebble.Iterator
	closed bool
}

// Seek - move to the first key >= key
func (i *Iterator) Seek(key []byte) {
	if i.closed {
		return
	}
	i.iter.SeekGE(key)
}

// SeekToFirst - move to the smallest key
func (i *Iterator) SeekToFirst() {
	if i.closed {
		return
	}
	i.iter.First()
}

// Next - advance, does nothing if not positioned
func (i *Iterator) Next() {
	if !i.Valid() {
		return
	}
	i.iter.Next()
}

// Valid - true if positioned on a record
func (i *Iterator) Valid() bool {
	return !i.closed && i.iter.Valid()
}

// Key - current key
func (i *Iterator) Key() []byte {
	if !i.Valid() {
		return nil
	}
	return i.iter.Key()
}

// Value - current stored value
func (i *Iterator) Value() []byte {
	if !i.Valid() {
		return nil
	}
	return i.iter.Value()
}

// Error - any error met while iterating
func (i *Iterator) Error() error {
	if i.closed {
		return nil
	}
	return i.iter.Error()
}

// Close - release the iterator
func (i *Iterator) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	return i.iter.Close()
}
