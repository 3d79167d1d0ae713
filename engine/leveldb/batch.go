// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldb

import (
	"sync/atomic"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/dbwrapper/fault"
)

// long keys and values need a second length byte
const shortLength = 127

// Batch - operations queued for a goleveldb write
type Batch struct {
	owner *Engine
	batch *leveldb.Batch
	size  int
	done  atomic.Bool
}

// Write - queue a put
func (b *Batch) Write(key []byte, value []byte) {
	if b.done.Load() {
		return
	}
	b.batch.Put(key, value)
	b.size += 3 + lengthCost(key) + len(key) + lengthCost(value) + len(value)
}

// Erase - queue a delete
func (b *Batch) Erase(key []byte) {
	if b.done.Load() {
		return
	}
	b.batch.Delete(key)
	b.size += 2 + lengthCost(key) + len(key)
}

// Clear - discard all queued operations
func (b *Batch) Clear() {
	b.batch.Reset()
	b.size = 0
}

// ApproximateSize - estimate of the serialized batch
func (b *Batch) ApproximateSize() int {
	return b.size
}

// Close - discard the batch
func (b *Batch) Close() error {
	if b.done.Swap(true) {
		return fault.ErrBatchDone
	}
	b.Clear()
	return nil
}

func lengthCost(data []byte) int {
	if len(data) > shortLength {
		return 1
	}
	return 0
}
