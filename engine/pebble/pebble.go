// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pebble - log structured merge backend using pebble
package pebble

import (
	"bytes"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/bitmark-inc/dbwrapper/engine"
	"github.com/bitmark-inc/dbwrapper/fault"
	"github.com/bitmark-inc/dbwrapper/util"
)

const (
	minimumCacheSize    = 1 << 20
	minimumMemTableSize = 4 << 20
)

// Engine - an open pebble database
type Engine struct {
	sync.RWMutex
	log    *logger.L
	name   string
	db     *pebble.DB
	closed bool
}

// Open - open or create a database as described by options
func Open(options engine.Options) (*Engine, error) {
	log := logger.New("pebble")

	if !options.MemoryOnly && "" == options.Path {
		return nil, fault.ErrMissingPath
	}

	memTableSize := uint64(options.CacheBytes / 4)
	if memTableSize < minimumMemTableSize {
		memTableSize = minimumMemTableSize
	}

	cacheSize := int64(options.CacheBytes / 2)
	if cacheSize < minimumCacheSize {
		cacheSize = minimumCacheSize
	}
	cache := pebble.NewCache(cacheSize)
	defer cache.Unref()

	opts := &pebble.Options{
		Cache:        cache,
		MemTableSize: memTableSize,
		Logger:       &pebbleLogger{log: log},
	}

	path := options.Path
	name := options.Path
	if options.MemoryOnly {
		opts.FS = vfs.NewMem()
		path = ""
		name = "memory"
	} else {
		if options.WipeData {
			log.Infof("wiping data in: %s", path)
			if err := Destroy(path); nil != err {
				return nil, err
			}
		}
		if err := util.EnsureDirectory(path); nil != err {
			return nil, err
		}
	}

	log.Infof("opening: %s", name)
	db, err := pebble.Open(path, opts)
	if nil != err {
		return nil, fatal(log, err)
	}

	e := &Engine{
		log:  log,
		name: name,
		db:   db,
	}

	if options.ForceCompact {
		if err := e.Compact(); nil != err {
			db.Close()
			return nil, err
		}
	}
	return e, nil
}

// Destroy - remove all database files
func Destroy(path string) error {
	return util.RemoveTree(path)
}

func fatal(log *logger.L, err error) error {
	if pebble.ErrClosed == err {
		return fault.ErrDatabaseClosed
	}
	log.Criticalf("Fatal pebble error: %s", err)
	return fault.Fatalf("Fatal pebble error: %s", err)
}

// Read - fetch a value
func (e *Engine) Read(key []byte) ([]byte, bool, error) {
	e.RLock()
	defer e.RUnlock()
	if e.closed {
		return nil, false, fault.ErrDatabaseClosed
	}

	value, closer, err := e.db.Get(key)
	if pebble.ErrNotFound == err {
		return nil, false, nil
	}
	if nil != err {
		return nil, false, fatal(e.log, err)
	}
	defer closer.Close()

	result := make([]byte, len(value))
	copy(result, value)
	return result, true, nil
}

// Exists - check for a key
func (e *Engine) Exists(key []byte) (bool, error) {
	e.RLock()
	defer e.RUnlock()
	if e.closed {
		return false, fault.ErrDatabaseClosed
	}

	_, closer, err := e.db.Get(key)
	if pebble.ErrNotFound == err {
		return false, nil
	}
	if nil != err {
		return false, fatal(e.log, err)
	}
	closer.Close()
	return true, nil
}

// EstimateSize - disk space used by the key range
func (e *Engine) EstimateSize(begin []byte, end []byte) (uint64, error) {
	e.RLock()
	defer e.RUnlock()
	if e.closed {
		return 0, fault.ErrDatabaseClosed
	}

	if nil == end {
		_, last, err := e.bounds()
		if nil != err {
			return 0, fatal(e.log, err)
		}
		end = append(last, 0)
	}

	// pebble rejects a reversed range
	if bytes.Compare(begin, end) >= 0 {
		return 0, nil
	}

	size, err := e.db.EstimateDiskUsage(begin, end)
	if nil != err {
		return 0, fatal(e.log, err)
	}
	return size, nil
}

// NewBatch - create an empty batch
func (e *Engine) NewBatch() engine.Batch {
	return &Batch{
		owner: e,
		batch: e.db.NewBatch(),
	}
}

// WriteBatch - atomically apply a batch
func (e *Engine) WriteBatch(b engine.Batch, sync bool) error {
	batch, ok := b.(*Batch)
	if !ok || batch.owner != e {
		fault.Panicf("pebble: write batch: %s", fault.ErrBatchMismatch)
	}
	if batch.done.Load() {
		return fault.ErrBatchDone
	}

	e.RLock()
	defer e.RUnlock()
	if e.closed {
		return fault.ErrDatabaseClosed
	}

	if nil != batch.err {
		err := batch.err
		batch.Clear()
		return fatal(e.log, err)
	}

	opt := pebble.NoSync
	if sync {
		opt = pebble.Sync
	}
	err := batch.batch.Commit(opt)

	// a committed pebble batch cannot take new operations
	batch.batch.Close()
	batch.batch = e.db.NewBatch()

	if nil != err {
		return fatal(e.log, err)
	}
	return nil
}

// NewIterator - create an iterator over a consistent snapshot
func (e *Engine) NewIterator() (engine.Iterator, error) {
	e.RLock()
	defer e.RUnlock()
	if e.closed {
		return nil, fault.ErrDatabaseClosed
	}

	iter, err := e.db.NewIter(nil)
	if nil != err {
		return nil, fatal(e.log, err)
	}
	return &Iterator{iter: iter}, nil
}

// DynamicMemoryUsage - bytes held in memtables and the block cache
func (e *Engine) DynamicMemoryUsage() uint64 {
	e.RLock()
	defer e.RUnlock()
	if e.closed {
		return 0
	}

	m := e.db.Metrics()
	total := m.MemTable.Size
	if m.BlockCache.Size > 0 {
		total += uint64(m.BlockCache.Size)
	}
	return total
}

// Compact - compact the complete key space, blocks until done
func (e *Engine) Compact() error {
	e.RLock()
	defer e.RUnlock()
	if e.closed {
		return fault.ErrDatabaseClosed
	}

	first, last, err := e.bounds()
	if nil != err {
		return fatal(e.log, err)
	}
	if nil == first {
		e.log.Infof("nothing to compact in %s", e.name)
		return nil
	}

	e.log.Infof("starting database compaction of %s", e.name)
	if err := e.db.Compact(first, append(last, 0), true); nil != err {
		return fatal(e.log, err)
	}
	e.log.Infof("finished database compaction of %s", e.name)
	return nil
}

// smallest and largest keys, nil if the database is empty
func (e *Engine) bounds() ([]byte, []byte, error) {
	iter, err := e.db.NewIter(nil)
	if nil != err {
		return nil, nil, err
	}
	defer iter.Close()

	if !iter.First() {
		return nil, nil, iter.Error()
	}
	first := append([]byte{}, iter.Key()...)
	if !iter.Last() {
		return nil, nil, iter.Error()
	}
	last := append([]byte{}, iter.Key()...)
	return first, last, nil
}

// Name - path of the database
func (e *Engine) Name() string {
	return e.name
}

// Close - release the database
func (e *Engine) Close() error {
	e.Lock()
	defer e.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	if err := e.db.Close(); nil != err {
		return fatal(e.log, err)
	}
	e.log.Infof("closed: %s", e.name)
	return nil
}

// route pebble's own messages to the pebble log channel
type pebbleLogger struct {
	log *logger.L
}

func (l *pebbleLogger) Infof(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

func (l *pebbleLogger) Errorf(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

func (l *pebbleLogger) Fatalf(format string, args ...interface{}) {
	l.log.Criticalf(format, args...)
	fault.Panicf(format, args...)
}
