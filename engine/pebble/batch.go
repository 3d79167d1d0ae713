// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pebble

import (
	"sync/atomic"

	"github.com/cockroachdb/pebble"

	"github.com/bitmark-inc/dbwrapper/fault"
)

// Batch - operations queued for a pebble commit
type Batch struct {
	owner *Engine
	batch *pebble.Batch
	err   error
	done  atomic.Bool
}

// Write - queue a put
func (b *Batch) Write(key []byte, value []byte) {
	if b.done.Load() {
		return
	}
	if err := b.batch.Set(key, value, nil); nil != err && nil == b.err {
		b.err = err
	}
}

// Erase - queue a delete
func (b *Batch) Erase(key []byte) {
	if b.done.Load() {
		return
	}
	if err := b.batch.Delete(key, nil); nil != err && nil == b.err {
		b.err = err
	}
}

// Clear - discard all queued operations
func (b *Batch) Clear() {
	if b.done.Load() {
		return
	}
	b.batch.Reset()
	b.err = nil
}

// ApproximateSize - length of the batch representation
func (b *Batch) ApproximateSize() int {
	if b.done.Load() || b.batch.Empty() {
		return 0
	}
	return b.batch.Len()
}

// Close - discard the batch
func (b *Batch) Close() error {
	if !b.done.CompareAndSwap(false, true) {
		return fault.ErrBatchDone
	}
	return b.batch.Close()
}
