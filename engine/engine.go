// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - byte level contracts shared by the storage backends
//
// keys and values at this level are opaque; serialization and value
// obfuscation are done by the storage package
package engine

//go:generate mockgen -source=engine.go -destination=mocks/engine.go -package=mocks

// Options - settings passed to a backend when it is opened
type Options struct {
	Path         string // directory holding the engine files
	CacheBytes   int    // total memory budget for engine caches
	MemoryOnly   bool   // keep nothing on disk
	WipeData     bool   // destroy existing data before opening
	ForceCompact bool   // compact the whole key space after opening
}

// Engine - a key/value store with atomic batches and ordered iteration
type Engine interface {
	// a miss is (nil, false, nil)
	Read(key []byte) ([]byte, bool, error)
	Exists(key []byte) (bool, error)

	// approximate bytes used by keys in [begin, end)
	EstimateSize(begin []byte, end []byte) (uint64, error)

	NewBatch() Batch

	// apply all operations of the batch or none of them
	//
	// on success the batch is empty and can be reused
	WriteBatch(batch Batch, sync bool) error

	NewIterator() (Iterator, error)
	DynamicMemoryUsage() uint64
	Name() string
	Close() error
}

// Batch - pending operations for Engine.WriteBatch
//
// errors met while queueing are held and returned by WriteBatch
type Batch interface {
	Write(key []byte, value []byte)
	Erase(key []byte)
	Clear()
	ApproximateSize() int
	Close() error
}

// Iterator - forward cursor over the sorted key space
//
// Key and Value are only valid until the next move or Close
type Iterator interface {
	Seek(key []byte)
	SeekToFirst()
	Next()
	Valid() bool
	Key() []byte
	Value() []byte
	Error() error
	Close() error
}

// SortedBatch - a batch that supports ordered append writes
type SortedBatch interface {
	Batch
	WriteSorted(key []byte, value []byte)
	EraseSorted(key []byte)
}

// PartitionedReader - an engine that can read the newest partition
// holding a key
type PartitionedReader interface {
	ReadPartitioned(key []byte) ([]byte, bool, error)
}

// Compactor - an engine that can compact its whole key space
type Compactor interface {
	Compact() error
}
