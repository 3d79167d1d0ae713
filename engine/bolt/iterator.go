// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bolt

import (
	bolt "go.etcd.io/bbolt"
)

// Iterator - cursor inside a read transaction
type Iterator struct {
	tx     *bolt.Tx
	cursor *bolt.Cursor
	key    []byte
	value  []byte
}

func (i *Iterator) set(key []byte, value []byte) {
	i.key = key
	i.value = value
}

// Seek - move to the first key >= key
func (i *Iterator) Seek(key []byte) {
	if nil == i.tx {
		return
	}
	i.set(i.cursor.Seek(key))
}

// SeekToFirst - move to the smallest key
func (i *Iterator) SeekToFirst() {
	if nil == i.tx {
		return
	}
	i.set(i.cursor.First())
}

// Next - advance, does nothing if not positioned
func (i *Iterator) Next() {
	if nil == i.key {
		return
	}
	i.set(i.cursor.Next())
}

// Valid - true if positioned on a record
func (i *Iterator) Valid() bool {
	return nil != i.key
}

// Key - current key
func (i *Iterator) Key() []byte {
	return i.key
}

// Value - current stored value, empty rather than nil when positioned
func (i *Iterator) Value() []byte {
	if nil == i.key {
		return nil
	}
	if nil == i.value {
		return []byte{}
	}
	return i.value
}

// Error - cursor moves do not fail
func (i *Iterator) Error() error {
	return nil
}

// Close - end the read transaction
func (i *Iterator) Close() error {
	if nil == i.tx {
		return nil
	}
	err := i.tx.Rollback()
	i.tx = nil
	i.cursor = nil
	i.set(nil, nil)
	return err
}
