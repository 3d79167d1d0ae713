// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bolt - transactional B+Tree backends using bbolt
//
// two variants share one file format: the simple engine and the
// partition aware engine, which adds ordered append writes on top of
// the same flat key space
//
// bbolt remaps its file while committing, so an iterator must be
// closed before a batch is written from the same goroutine
package bolt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	bolt "go.etcd.io/bbolt"

	"github.com/bitmark-inc/dbwrapper/engine"
	"github.com/bitmark-inc/dbwrapper/fault"
	"github.com/bitmark-inc/dbwrapper/util"
)

const (
	dataFile    = "data.bolt"
	lockTimeout = 2 * time.Second

	// approximate page element overhead of one stored record
	elementHeaderSize = 16
)

var bucketName = []byte("data")

// Engine - an open bbolt database
type Engine struct {
	log     *logger.L
	name    string
	db      *bolt.DB
	tempDir string

	// bbolt has a single writer, so at most one batch holds a write
	// transaction
	writer struct {
		sync.Mutex
		batch *Batch
	}
}

// Open - open or create the simple engine
func Open(options engine.Options) (*Engine, error) {
	return open(options, logger.New("bolt"))
}

func open(options engine.Options, log *logger.L) (*Engine, error) {
	e := &Engine{
		log:  log,
		name: options.Path,
	}

	directory := options.Path
	if options.MemoryOnly {
		d, err := os.MkdirTemp("", "bolt-memory-")
		if nil != err {
			return nil, err
		}
		directory = d
		e.tempDir = d
		e.name = "memory"
	} else {
		if "" == directory {
			return nil, fault.ErrMissingPath
		}
		if options.WipeData {
			log.Infof("wiping data in: %s", directory)
			if err := Destroy(directory); nil != err {
				return nil, err
			}
		}
		if err := util.EnsureDirectory(directory); nil != err {
			return nil, err
		}
	}

	fileName := filepath.Join(directory, dataFile)
	log.Infof("opening: %s", fileName)
	db, err := bolt.Open(fileName, 0o600, &bolt.Options{Timeout: lockTimeout})
	if nil != err {
		e.removeTemp()
		return nil, fatal(log, err)
	}
	e.db = db

	err = createBucket(db)
	if nil != err {
		db.Close()
		e.removeTemp()
		return nil, fatal(log, err)
	}

	if options.ForceCompact {
		log.Warnf("compaction is not supported, ignored for: %s", e.name)
	}
	return e, nil
}

// an existing store is only read so opening never commits
func createBucket(db *bolt.DB) error {
	exists := false
	err := db.View(func(tx *bolt.Tx) error {
		exists = nil != tx.Bucket(bucketName)
		return nil
	})
	if nil != err || exists {
		return err
	}
	return db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
}

// Destroy - remove all database files
func Destroy(path string) error {
	return util.RemoveTree(path)
}

func fatal(log *logger.L, err error) error {
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return fault.ErrDatabaseClosed
	}
	log.Criticalf("Fatal bolt error: %s", err)
	return fault.Fatalf("Fatal bolt error: %s", err)
}

// find a key, bbolt may give nil for a stored empty value so presence
// is decided by the cursor key
func get(bucket *bolt.Bucket, key []byte) ([]byte, bool) {
	k, v := bucket.Cursor().Seek(key)
	if nil == k || !bytes.Equal(k, key) {
		return nil, false
	}
	return v, true
}

// Read - fetch a value
func (e *Engine) Read(key []byte) ([]byte, bool, error) {
	var value []byte
	found := false
	err := e.db.View(func(tx *bolt.Tx) error {
		v, ok := get(tx.Bucket(bucketName), key)
		if ok {
			found = true
			value = append([]byte{}, v...)
		}
		return nil
	})
	if nil != err {
		return nil, false, fatal(e.log, err)
	}
	return value, found, nil
}

// Exists - check for a key
func (e *Engine) Exists(key []byte) (bool, error) {
	found := false
	err := e.db.View(func(tx *bolt.Tx) error {
		_, found = get(tx.Bucket(bucketName), key)
		return nil
	})
	if nil != err {
		return false, fatal(e.log, err)
	}
	return found, nil
}

// EstimateSize - bytes of the records in [begin, end)
//
// a nil end means no upper limit
func (e *Engine) EstimateSize(begin []byte, end []byte) (uint64, error) {
	total := uint64(0)
	err := e.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketName).Cursor()
		for k, v := c.Seek(begin); nil != k; k, v = c.Next() {
			if nil != end && bytes.Compare(k, end) >= 0 {
				break
			}
			total += uint64(elementHeaderSize + len(k) + len(v))
		}
		return nil
	})
	if nil != err {
		return 0, fatal(e.log, err)
	}
	return total, nil
}

// NewBatch - create an empty batch
//
// the write transaction is started by the first operation
func (e *Engine) NewBatch() engine.Batch {
	return &Batch{
		owner: e,
	}
}

// WriteBatch - commit the batch's write transaction
//
// bbolt always syncs on commit so the flag has no effect
func (e *Engine) WriteBatch(b engine.Batch, sync bool) error {
	var batch *Batch
	switch t := b.(type) {
	case *Batch:
		batch = t
	case *PartitionedBatch:
		batch = &t.Batch
	}
	if nil == batch || batch.owner != e {
		fault.Panicf("bolt: write batch: %s", fault.ErrBatchMismatch)
	}
	if batch.done.Load() {
		return fault.ErrBatchDone
	}

	if nil != batch.err {
		err := batch.err
		batch.Clear()
		if fault.IsErrInvalid(err) || fault.IsErrFatal(err) || fault.IsErrProcess(err) {
			return err
		}
		return fatal(e.log, err)
	}

	if nil == batch.tx {
		return nil
	}

	if batch.sorted {
		if err := advancePartition(batch.tx.Bucket(bucketName)); nil != err {
			batch.Clear()
			if fault.IsErrFatal(err) {
				return err
			}
			return fatal(e.log, err)
		}
	}

	err := batch.tx.Commit()
	batch.reset()
	if nil != err {
		return fatal(e.log, err)
	}
	return nil
}

// NewIterator - create an iterator holding a read transaction
func (e *Engine) NewIterator() (engine.Iterator, error) {
	tx, err := e.db.Begin(false)
	if nil != err {
		return nil, fatal(e.log, err)
	}
	return &Iterator{
		tx:     tx,
		cursor: tx.Bucket(bucketName).Cursor(),
	}, nil
}

// DynamicMemoryUsage - bytes held by the free page list
func (e *Engine) DynamicMemoryUsage() uint64 {
	stats := e.db.Stats()
	if stats.FreelistInuse < 0 {
		return 0
	}
	return uint64(stats.FreelistInuse)
}

// Name - path of the database
func (e *Engine) Name() string {
	return e.name
}

// Close - release the database
//
// an uncommitted batch is rolled back and fails any later WriteBatch
// with ErrBatchDone, it must not be in use by another goroutine
func (e *Engine) Close() error {
	e.writer.Lock()
	batch := e.writer.batch
	e.writer.batch = nil
	e.writer.Unlock()

	if nil != batch {
		e.log.Warnf("rolling back uncommitted batch: %s", e.name)
		batch.abort()
	}

	err := e.db.Close()
	e.removeTemp()
	if nil != err {
		return fatal(e.log, err)
	}
	e.log.Infof("closed: %s", e.name)
	return nil
}

func (e *Engine) track(b *Batch) {
	e.writer.Lock()
	e.writer.batch = b
	e.writer.Unlock()
}

func (e *Engine) untrack(b *Batch) {
	e.writer.Lock()
	if b == e.writer.batch {
		e.writer.batch = nil
	}
	e.writer.Unlock()
}

func (e *Engine) removeTemp() {
	if "" == e.tempDir {
		return
	}
	if err := util.RemoveTree(e.tempDir); nil != err {
		e.log.Warnf("remove: %s  error: %s", e.tempDir, err)
	}
	e.tempDir = ""
}
