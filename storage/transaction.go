// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/dbwrapper/engine"
	"github.com/bitmark-inc/dbwrapper/stream"
)

// Batch - typed operations queued for Handle.WriteBatch
//
// nothing is visible until the batch is written
type Batch struct {
	handle *Handle
	batch  engine.Batch
	keys   map[string]struct{} // touched keys, for read cache invalidation
	sorted bool
}

// NewBatch - create an empty batch for this handle
func (h *Handle) NewBatch() *Batch {
	b := &Batch{
		handle: h,
		batch:  h.engine.NewBatch(),
	}
	b.reset()
	return b
}

func (b *Batch) reset() {
	b.sorted = false
	if nil != b.handle.cache {
		b.keys = make(map[string]struct{})
	}
}

func (b *Batch) touch(key []byte) {
	if nil != b.keys {
		b.keys[string(key)] = struct{}{}
	}
}

// serialize a key and an obfuscated value
func (b *Batch) marshal(key interface{}, value interface{}) ([]byte, []byte, error) {
	k, err := stream.Marshal(key)
	if nil != err {
		return nil, nil, err
	}
	v, err := stream.Marshal(value)
	if nil != err {
		return nil, nil, err
	}
	b.handle.obfuscation.Apply(v, 0)
	return k, v, nil
}

// Write - queue a put
func (b *Batch) Write(key interface{}, value interface{}) error {
	k, v, err := b.marshal(key, value)
	if nil != err {
		return err
	}
	b.batch.Write(k, v)
	b.touch(k)
	return nil
}

// WriteSorted - queue an ordered append write, a plain write on
// engines without partitions
func (b *Batch) WriteSorted(key interface{}, value interface{}) error {
	k, v, err := b.marshal(key, value)
	if nil != err {
		return err
	}
	if sb, ok := b.batch.(engine.SortedBatch); ok {
		sb.WriteSorted(k, v)
		b.sorted = true
	} else {
		b.batch.Write(k, v)
	}
	b.touch(k)
	return nil
}

// Erase - queue a delete
func (b *Batch) Erase(key interface{}) error {
	k, err := stream.Marshal(key)
	if nil != err {
		return err
	}
	b.batch.Erase(k)
	b.touch(k)
	return nil
}

// EraseSorted - queue a tombstone in the current partition, a plain
// delete on engines without partitions
func (b *Batch) EraseSorted(key interface{}) error {
	k, err := stream.Marshal(key)
	if nil != err {
		return err
	}
	if sb, ok := b.batch.(engine.SortedBatch); ok {
		sb.EraseSorted(k)
		b.sorted = true
	} else {
		b.batch.Erase(k)
	}
	b.touch(k)
	return nil
}

// Clear - discard everything queued
func (b *Batch) Clear() {
	b.batch.Clear()
	b.reset()
}

// ApproximateSize - estimate of the bytes queued, for deciding when to
// write a large batch early
func (b *Batch) ApproximateSize() int {
	return b.batch.ApproximateSize()
}

// Close - discard the batch, anything not written is lost
func (b *Batch) Close() error {
	return b.batch.Close()
}
