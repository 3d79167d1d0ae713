// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bolt

import (
	"sync/atomic"

	bolt "go.etcd.io/bbolt"

	"github.com/bitmark-inc/dbwrapper/fault"
)

// Batch - a write transaction that stays open while operations are
// queued
//
// closing or clearing the batch before WriteBatch rolls back so
// nothing queued becomes visible
type Batch struct {
	owner  *Engine
	tx     *bolt.Tx
	size   int
	sorted bool
	err    error
	done   atomic.Bool
}

// start the write transaction if it is not already open
//
// returns nil after recording the error in the batch
func (b *Batch) bucket() *bolt.Bucket {
	if b.done.Load() || nil != b.err {
		return nil
	}
	if nil == b.tx {
		tx, err := b.owner.db.Begin(true)
		if nil != err {
			b.err = err
			return nil
		}
		b.tx = tx
		b.owner.track(b)
	}
	return b.tx.Bucket(bucketName)
}

// bbolt keeps references to the slices until commit
func (b *Batch) put(bucket *bolt.Bucket, key []byte, value []byte) {
	err := bucket.Put(append([]byte{}, key...), append([]byte{}, value...))
	if nil != err {
		b.err = err
	}
}

// Write - queue a put
func (b *Batch) Write(key []byte, value []byte) {
	bucket := b.bucket()
	if nil == bucket {
		return
	}
	b.put(bucket, key, value)
	b.size += elementHeaderSize + len(key) + len(value)
}

// Erase - queue a delete
func (b *Batch) Erase(key []byte) {
	bucket := b.bucket()
	if nil == bucket {
		return
	}
	if err := bucket.Delete(key); nil != err {
		b.err = err
	}
	b.size += elementHeaderSize + len(key)
}

// Clear - roll back everything queued, the batch stays usable
func (b *Batch) Clear() {
	if nil != b.tx {
		b.tx.Rollback()
	}
	b.reset()
}

func (b *Batch) reset() {
	if nil != b.tx {
		b.owner.untrack(b)
	}
	b.tx = nil
	b.size = 0
	b.sorted = false
	b.err = nil
}

// ApproximateSize - bytes queued
func (b *Batch) ApproximateSize() int {
	return b.size
}

// mark done and release the write transaction
func (b *Batch) abort() {
	b.done.Store(true)
	b.Clear()
}

// Close - roll back anything not written
func (b *Batch) Close() error {
	if b.done.Swap(true) {
		return fault.ErrBatchDone
	}
	b.Clear()
	return nil
}
