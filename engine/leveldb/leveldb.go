// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package leveldb - log structured merge backend using goleveldb
package leveldb

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/dbwrapper/engine"
	"github.com/bitmark-inc/dbwrapper/fault"
	"github.com/bitmark-inc/dbwrapper/util"
)

const (
	bloomFilterBits        = 10
	openFilesCacheOn32Bits = 64
	cachedBlockProperty    = "leveldb.cachedblock"
)

// Engine - an open goleveldb database
type Engine struct {
	log      *logger.L
	name     string
	db       *leveldb.DB
	readOpt  *ldb_opt.ReadOptions
	iterOpt  *ldb_opt.ReadOptions
	syncOpt  *ldb_opt.WriteOptions
	writeOpt *ldb_opt.WriteOptions
}

// Open - open or create a database as described by options
func Open(options engine.Options) (*Engine, error) {
	log := logger.New("leveldb")

	if !options.MemoryOnly && "" == options.Path {
		return nil, fault.ErrMissingPath
	}

	opt := &ldb_opt.Options{
		BlockCacheCapacity: options.CacheBytes / 2,
		WriteBuffer:        options.CacheBytes / 4,
		Filter:             filter.NewBloomFilter(bloomFilterBits),
		Compression:        ldb_opt.NoCompression,
		Strict:             ldb_opt.DefaultStrict | ldb_opt.StrictBlockChecksum,
	}
	if 4 == strconv.IntSize {
		opt.OpenFilesCacheCapacity = openFilesCacheOn32Bits
	}

	var db *leveldb.DB
	var err error
	if options.MemoryOnly {
		db, err = leveldb.Open(ldb_storage.NewMemStorage(), opt)
	} else {
		if options.WipeData {
			log.Infof("wiping data in: %s", options.Path)
			if err := Destroy(options.Path); nil != err {
				return nil, err
			}
		}
		if err := util.EnsureDirectory(options.Path); nil != err {
			return nil, err
		}
		log.Infof("opening: %s", options.Path)
		db, err = leveldb.OpenFile(options.Path, opt)
	}
	if nil != err {
		return nil, fatal(log, err)
	}

	e := &Engine{
		log:      log,
		name:     options.Path,
		db:       db,
		readOpt:  &ldb_opt.ReadOptions{Strict: ldb_opt.StrictBlockChecksum},
		iterOpt:  &ldb_opt.ReadOptions{Strict: ldb_opt.StrictBlockChecksum, DontFillCache: true},
		syncOpt:  &ldb_opt.WriteOptions{Sync: true},
		writeOpt: &ldb_opt.WriteOptions{Sync: false},
	}
	if options.MemoryOnly {
		e.name = "memory"
	}

	if options.ForceCompact {
		if err := e.Compact(); nil != err {
			db.Close()
			return nil, err
		}
	}

	log.Infof("opened: %s", e.name)
	return e, nil
}

// Destroy - remove all database files
func Destroy(path string) error {
	return util.RemoveTree(path)
}

// translate an engine error, only called for errors other than not found
func fatal(log *logger.L, err error) error {
	if leveldb.ErrClosed == err {
		return fault.ErrDatabaseClosed
	}
	log.Criticalf("Fatal LevelDB error: %s", err)
	return fault.Fatalf("Fatal LevelDB error: %s", err)
}

// Read - fetch a value
func (e *Engine) Read(key []byte) ([]byte, bool, error) {
	value, err := e.db.Get(key, e.readOpt)
	if leveldb.ErrNotFound == err {
		return nil, false, nil
	}
	if nil != err {
		return nil, false, fatal(e.log, err)
	}
	return value, true, nil
}

// Exists - check for a key without fetching its value
func (e *Engine) Exists(key []byte) (bool, error) {
	found, err := e.db.Has(key, e.readOpt)
	if nil != err {
		return false, fatal(e.log, err)
	}
	return found, nil
}

// EstimateSize - disk space used by the key range
func (e *Engine) EstimateSize(begin []byte, end []byte) (uint64, error) {
	sizes, err := e.db.SizeOf([]ldb_util.Range{{Start: begin, Limit: end}})
	if nil != err {
		return 0, fatal(e.log, err)
	}
	total := sizes.Sum()
	if total < 0 {
		return 0, nil
	}
	return uint64(total), nil
}

// NewBatch - create an empty batch
func (e *Engine) NewBatch() engine.Batch {
	return &Batch{
		owner: e,
		batch: new(leveldb.Batch),
	}
}

// WriteBatch - atomically apply a batch
func (e *Engine) WriteBatch(b engine.Batch, sync bool) error {
	batch, ok := b.(*Batch)
	if !ok || batch.owner != e {
		fault.Panicf("leveldb: write batch: %s", fault.ErrBatchMismatch)
	}
	if batch.done.Load() {
		return fault.ErrBatchDone
	}

	opt := e.writeOpt
	if sync {
		opt = e.syncOpt
	}
	if err := e.db.Write(batch.batch, opt); nil != err {
		batch.Clear()
		return fatal(e.log, err)
	}
	batch.Clear()
	return nil
}

// NewIterator - create an iterator over a consistent snapshot
func (e *Engine) NewIterator() (engine.Iterator, error) {
	return &Iterator{
		iter: e.db.NewIterator(nil, e.iterOpt),
	}, nil
}

// DynamicMemoryUsage - bytes held in the block cache
func (e *Engine) DynamicMemoryUsage() uint64 {
	s, err := e.db.GetProperty(cachedBlockProperty)
	if nil != err {
		e.log.Debugf("failed to get approximate memory usage: %s", err)
		return 0
	}
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if nil != err {
		e.log.Debugf("failed to parse approximate memory usage: %q: %s", s, err)
		return 0
	}
	return n
}

// Compact - compact the complete key space, blocks until done
func (e *Engine) Compact() error {
	e.log.Infof("starting database compaction of %s", e.name)
	if err := e.db.CompactRange(ldb_util.Range{}); nil != err {
		return fatal(e.log, err)
	}
	e.log.Infof("finished database compaction of %s", e.name)
	return nil
}

// Name - path of the database
func (e *Engine) Name() string {
	return e.name
}

// Close - release the database, nothing may be used afterwards
func (e *Engine) Close() error {
	err := e.db.Close()
	if nil != err && leveldb.ErrClosed != err {
		return fatal(e.log, err)
	}
	e.log.Infof("closed: %s", e.name)
	return nil
}
