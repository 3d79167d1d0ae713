// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldb

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"
)

// Iterator - wraps a goleveldb snapshot iterator
type Iterator struct {
	iter     iterator.Iterator
	released bool
}

// Seek - move to the first key >= key
func (i *Iterator) Seek(key []byte) {
	if i.released {
		return
	}
	i.iter.Seek(key)
}

// SeekToFirst - move to the smallest key
func (i *Iterator) SeekToFirst() {
	if i.released {
		return
	}
	i.iter.First()
}

// Next - advance, does nothing if not positioned
//
// goleveldb would move an unpositioned iterator to the first key
func (i *Iterator) Next() {
	if !i.Valid() {
		return
	}
	i.iter.Next()
}

// Valid - true if positioned on a record
func (i *Iterator) Valid() bool {
	return !i.released && i.iter.Valid()
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
	if i.released {
		return nil
	}
	return i.iter.Error()
}

// Close - release the snapshot
func (i *Iterator) Close() error {
	if i.released {
		return nil
	}
	err := i.iter.Error()
	i.iter.Release()
	i.released = true
	return err
}
