// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bolt

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/logger"
	bolt "go.etcd.io/bbolt"

	"github.com/bitmark-inc/dbwrapper/engine"
	"github.com/bitmark-inc/dbwrapper/fault"
)

// partition layout
//
//	key:   BE32(partition) ++ application key
//	value: stored value, empty for a tombstone
//
// partition 0 is metadata, the index of the partition being filled
// is stored in it and is 1 when absent
const (
	metadataPartition = 0
	firstPartition    = 1
	partitionSize     = 4
)

var partitionMetadataKey = PartitionKey(metadataPartition, []byte("partition"))

// PartitionKey - prefix a key with its partition index
func PartitionKey(index uint32, key []byte) []byte {
	k := make([]byte, partitionSize, partitionSize+len(key))
	binary.BigEndian.PutUint32(k, index)
	return append(k, key...)
}

// PartitionedEngine - the engine with ordered append writes
type PartitionedEngine struct {
	*Engine
}

// OpenPartitioned - open or create the partition aware engine
func OpenPartitioned(options engine.Options) (*PartitionedEngine, error) {
	e, err := open(options, logger.New("bolt"))
	if nil != err {
		return nil, err
	}
	return &PartitionedEngine{Engine: e}, nil
}

// NewBatch - create an empty batch supporting sorted operations
func (e *PartitionedEngine) NewBatch() engine.Batch {
	return &PartitionedBatch{
		Batch: Batch{
			owner: e.Engine,
		},
	}
}

// CurrentPartition - index of the partition the next sorted batch
// fills
func (e *PartitionedEngine) CurrentPartition() (uint32, error) {
	index := uint32(0)
	err := e.db.View(func(tx *bolt.Tx) error {
		var err error
		index, err = readPartition(tx.Bucket(bucketName))
		return err
	})
	if nil != err {
		if fault.IsErrFatal(err) {
			return 0, err
		}
		return 0, fatal(e.log, err)
	}
	return index, nil
}

// ReadPartitioned - fetch the value from the newest completed
// partition holding the key
//
// a tombstone in that partition is a miss, older partitions are not
// consulted
func (e *PartitionedEngine) ReadPartitioned(key []byte) ([]byte, bool, error) {
	var value []byte
	found := false
	err := e.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		current, err := readPartition(bucket)
		if nil != err {
			return err
		}
		for index := current; index > firstPartition; {
			index -= 1
			v, ok := get(bucket, PartitionKey(index, key))
			if !ok {
				continue
			}
			if 0 != len(v) {
				found = true
				value = append([]byte{}, v...)
			}
			return nil
		}
		return nil
	})
	if nil != err {
		if fault.IsErrFatal(err) {
			return nil, false, err
		}
		return nil, false, fatal(e.log, err)
	}
	return value, found, nil
}

func readPartition(bucket *bolt.Bucket) (uint32, error) {
	v, ok := get(bucket, partitionMetadataKey)
	if !ok {
		return firstPartition, nil
	}
	if partitionSize != len(v) {
		return 0, fault.Fatalf("partition metadata length: %d expected: %d", len(v), partitionSize)
	}
	return binary.BigEndian.Uint32(v), nil
}

// move to the next partition inside the committing transaction
func advancePartition(bucket *bolt.Bucket) error {
	index, err := readPartition(bucket)
	if nil != err {
		return err
	}
	if math.MaxUint32 == index {
		return fault.ErrPartitionOverflow
	}
	v := make([]byte, partitionSize)
	binary.BigEndian.PutUint32(v, index+1)
	return bucket.Put(append([]byte{}, partitionMetadataKey...), v)
}

// PartitionedBatch - batch with sorted operations
type PartitionedBatch struct {
	Batch
}

// WriteSorted - queue a put into the current partition
//
// empty values are the tombstone so they are rejected
func (b *PartitionedBatch) WriteSorted(key []byte, value []byte) {
	if 0 == len(value) {
		if !b.done.Load() && nil == b.err {
			b.err = fault.ErrEmptySortedValue
		}
		return
	}
	b.queueSorted(key, value)
}

// EraseSorted - queue a tombstone into the current partition
//
// records in older partitions are left in place
func (b *PartitionedBatch) EraseSorted(key []byte) {
	b.queueSorted(key, []byte{})
}

func (b *PartitionedBatch) queueSorted(key []byte, value []byte) {
	bucket := b.bucket()
	if nil == bucket {
		return
	}
	index, err := readPartition(bucket)
	if nil != err {
		b.err = err
		return
	}
	b.put(bucket, PartitionKey(index, key), value)
	b.Batch.sorted = true
	b.size += elementHeaderSize + partitionSize + len(key) + len(value)
}
