// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/dbwrapper/engine"
	"github.com/bitmark-inc/dbwrapper/stream"
)

// Iterator - ordered traversal of the raw key space
//
// starts unpositioned, call Seek or SeekToFirst before reading
type Iterator struct {
	handle *Handle
	iter   engine.Iterator
}

// NewIterator - create an iterator, it must be closed
func (h *Handle) NewIterator() (*Iterator, error) {
	iter, err := h.engine.NewIterator()
	if nil != err {
		return nil, err
	}
	return &Iterator{
		handle: h,
		iter:   iter,
	}, nil
}

// Seek - move to the first key >= the serialized key
func (i *Iterator) Seek(key interface{}) error {
	k, err := stream.Marshal(key)
	if nil != err {
		return err
	}
	i.iter.Seek(k)
	return nil
}

// SeekRaw - move to the first key >= key
func (i *Iterator) SeekRaw(key []byte) {
	i.iter.Seek(key)
}

// SeekToFirst - move to the smallest key
func (i *Iterator) SeekToFirst() {
	i.iter.SeekToFirst()
}

// Next - advance to the next key
func (i *Iterator) Next() {
	i.iter.Next()
}

// Valid - true if positioned on a record
func (i *Iterator) Valid() bool {
	return i.iter.Valid()
}

// GetKey - decode the current key
//
// false if not positioned or the key does not decode
func (i *Iterator) GetKey(key interface{}) bool {
	if !i.iter.Valid() {
		return false
	}
	return nil == stream.Unmarshal(i.iter.Key(), key)
}

// GetValue - decode the current value
//
// false if not positioned or the value does not decode, the iterator
// stays where it is
func (i *Iterator) GetValue(value interface{}) bool {
	if !i.iter.Valid() {
		return false
	}
	return nil == stream.Unmarshal(i.Value(), value)
}

// Key - copy of the current raw key
func (i *Iterator) Key() []byte {
	if !i.iter.Valid() {
		return nil
	}
	return append([]byte{}, i.iter.Key()...)
}

// Value - deobfuscated copy of the current value
func (i *Iterator) Value() []byte {
	if !i.iter.Valid() {
		return nil
	}
	value := append([]byte{}, i.iter.Value()...)
	i.handle.obfuscation.Apply(value, 0)
	return value
}

// Err - any error met by the engine while iterating
func (i *Iterator) Err() error {
	return i.iter.Error()
}

// Close - release the engine resources held by the iterator
func (i *Iterator) Close() error {
	return i.iter.Close()
}

// Map - run a function on each record from the current position to
// the end, stopping at the first error
func (i *Iterator) Map(f func(key []byte, value []byte) error) error {
	for ; i.iter.Valid(); i.iter.Next() {
		if err := f(i.Key(), i.Value()); nil != err {
			return err
		}
	}
	return i.iter.Error()
}
