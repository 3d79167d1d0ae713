// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dbwrapper/engine"
	"github.com/bitmark-inc/dbwrapper/fault"
	"github.com/bitmark-inc/dbwrapper/obfuscation"
	"github.com/bitmark-inc/dbwrapper/stream"
)

// Handle - an open store
//
// reads and iterators are safe from several goroutines, writers must
// be serialised by the caller
type Handle struct {
	log         *logger.L
	backend     Backend
	path        string
	engine      engine.Engine
	obfuscation obfuscation.Obfuscation
	cache       *readCache
}

// Read - fetch and decode the value stored under key
//
// a miss is (false, nil), a value that does not decode is
// (false, DecodeError)
func (h *Handle) Read(key interface{}, value interface{}) (bool, error) {
	k, err := stream.Marshal(key)
	if nil != err {
		return false, err
	}
	raw, found, err := h.readRaw(k)
	return h.decode(raw, found, err, value)
}

// ReadPartitioned - like Read but finds the newest sorted write
//
// engines without partitions give the plain value
func (h *Handle) ReadPartitioned(key interface{}, value interface{}) (bool, error) {
	k, err := stream.Marshal(key)
	if nil != err {
		return false, err
	}
	raw, found, err := h.readPartitionedRaw(k)
	return h.decode(raw, found, err, value)
}

// ExistsPartitioned - true if a partitioned read would find the key
func (h *Handle) ExistsPartitioned(key interface{}) (bool, error) {
	k, err := stream.Marshal(key)
	if nil != err {
		return false, err
	}
	_, found, err := h.readPartitionedRaw(k)
	return found, err
}

// ReadBytes - fetch the value under an already serialized key
//
// the result is deobfuscated but not decoded
func (h *Handle) ReadBytes(key []byte) ([]byte, bool, error) {
	raw, found, err := h.readRaw(key)
	if nil != err || !found {
		return nil, false, err
	}
	value := append([]byte{}, raw...)
	h.obfuscation.Apply(value, 0)
	return value, true, nil
}

// deobfuscate a copy of the engine bytes and decode it into value
func (h *Handle) decode(raw []byte, found bool, err error, value interface{}) (bool, error) {
	if nil != err || !found {
		return false, err
	}
	v := append([]byte{}, raw...)
	h.obfuscation.Apply(v, 0)
	if err := stream.Unmarshal(v, value); nil != err {
		return false, err
	}
	return true, nil
}

func (h *Handle) readRaw(key []byte) ([]byte, bool, error) {
	if nil == h.cache {
		return h.engine.Read(key)
	}

	if value, found, cached := h.cache.get(key); cached {
		return value, found, nil
	}

	generation := h.cache.generation()
	value, found, err := h.engine.Read(key)
	if nil != err {
		return nil, false, err
	}
	h.cache.set(generation, key, value, found)
	return value, found, nil
}

func (h *Handle) readPartitionedRaw(key []byte) ([]byte, bool, error) {
	if reader, ok := h.engine.(engine.PartitionedReader); ok {
		return reader.ReadPartitioned(key)
	}
	return h.readRaw(key)
}

// Exists - check for a key
func (h *Handle) Exists(key interface{}) (bool, error) {
	k, err := stream.Marshal(key)
	if nil != err {
		return false, err
	}
	if nil != h.cache {
		if _, found, cached := h.cache.get(k); cached {
			return found, nil
		}
	}
	return h.engine.Exists(k)
}

// Write - store a single value
func (h *Handle) Write(key interface{}, value interface{}, sync bool) error {
	batch := h.NewBatch()
	defer batch.Close()
	if err := batch.Write(key, value); nil != err {
		return err
	}
	return h.WriteBatch(batch, sync)
}

// Erase - remove a single key
func (h *Handle) Erase(key interface{}, sync bool) error {
	batch := h.NewBatch()
	defer batch.Close()
	if err := batch.Erase(key); nil != err {
		return err
	}
	return h.WriteBatch(batch, sync)
}

// EstimateSize - approximate bytes used by keys in [begin, end)
func (h *Handle) EstimateSize(begin interface{}, end interface{}) (uint64, error) {
	b, err := stream.Marshal(begin)
	if nil != err {
		return 0, err
	}
	e, err := stream.Marshal(end)
	if nil != err {
		return 0, err
	}
	return h.engine.EstimateSize(b, e)
}

// WriteBatch - atomically apply a batch
//
// the batch is empty and reusable afterwards, whether or not the write
// succeeded
func (h *Handle) WriteBatch(batch *Batch, sync bool) error {
	if batch.handle != h {
		fault.Panicf("storage: write batch: %s", fault.ErrBatchMismatch)
	}

	before := h.engine.DynamicMemoryUsage()
	err := h.engine.WriteBatch(batch.batch, sync)
	after := h.engine.DynamicMemoryUsage()
	h.log.Debugf("WriteBatch memory usage: db=%s  before=%.1fMiB  after=%.1fMiB", h.Name(), mebibytes(before), mebibytes(after))

	if nil != h.cache {
		if batch.sorted {
			h.cache.flush()
		} else {
			h.cache.invalidate(batch.keys)
		}
	}
	batch.reset()

	return err
}

func mebibytes(n uint64) float64 {
	return float64(n) / (1 << 20)
}

// IsEmpty - true if the store holds no records
func (h *Handle) IsEmpty() (bool, error) {
	iter, err := h.NewIterator()
	if nil != err {
		return false, err
	}
	defer iter.Close()

	iter.SeekToFirst()
	if iter.Valid() {
		return false, nil
	}
	return true, iter.Err()
}

// DynamicMemoryUsage - approximate memory held by the engine
func (h *Handle) DynamicMemoryUsage() uint64 {
	return h.engine.DynamicMemoryUsage()
}

// Obfuscation - the key applied to stored values
func (h *Handle) Obfuscation() obfuscation.Obfuscation {
	return h.obfuscation
}

// Name - last element of the store's path
func (h *Handle) Name() string {
	if "" == h.path {
		return h.engine.Name()
	}
	return filepath.Base(h.path)
}

// Backend - engine in use
func (h *Handle) Backend() Backend {
	return h.backend
}

// Compact - compact the whole key space if the engine can
func (h *Handle) Compact() error {
	c, ok := h.engine.(engine.Compactor)
	if !ok {
		return fault.ErrNotCompactable
	}
	return c.Compact()
}

// Close - close the engine, the handle cannot be used afterwards
func (h *Handle) Close() error {
	if nil != h.cache {
		h.cache.flush()
	}
	return h.engine.Close()
}
