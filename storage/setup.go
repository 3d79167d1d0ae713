// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dbwrapper/engine"
	"github.com/bitmark-inc/dbwrapper/engine/bolt"
	"github.com/bitmark-inc/dbwrapper/engine/leveldb"
	"github.com/bitmark-inc/dbwrapper/engine/pebble"
	"github.com/bitmark-inc/dbwrapper/fault"
	"github.com/bitmark-inc/dbwrapper/obfuscation"
)

// Backend - name of a storage engine
type Backend string

// the available backends
const (
	BackendLevelDB         Backend = "leveldb"
	BackendPebble          Backend = "pebble"
	BackendBolt            Backend = "bolt"
	BackendBoltPartitioned Backend = "bolt-partitioned"
)

// DefaultBackend - used when no backend is given
const DefaultBackend = BackendLevelDB

// ObfuscateKeyKey - reserved key of the obfuscation key record
//
// the leading zero byte keeps it apart from application keys
const ObfuscateKeyKey = "\x00obfuscate_key"

// Options - engine tuning
type Options struct {
	ForceCompact bool
}

// Params - everything needed to open a store
type Params struct {
	Backend         Backend
	Path            string
	CacheBytes      int
	MemoryOnly      bool
	WipeData        bool
	Obfuscate       bool
	ReadCacheExpiry time.Duration // zero disables the read cache
	Options         Options
}

// ParseBackend - validate a backend name, empty gives the default
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(name); b {
	case "":
		return DefaultBackend, nil
	case BackendLevelDB, BackendPebble, BackendBolt, BackendBoltPartitioned:
		return b, nil
	default:
		return "", fault.ErrInvalidBackend
	}
}

// Open - open the engine and set up the obfuscation key
//
// the bootstrap must finish before anything else writes to the store
func Open(params Params) (*Handle, error) {
	backend, err := ParseBackend(string(params.Backend))
	if nil != err {
		return nil, err
	}
	params.Backend = backend

	options := engine.Options{
		Path:         params.Path,
		CacheBytes:   params.CacheBytes,
		MemoryOnly:   params.MemoryOnly,
		WipeData:     params.WipeData,
		ForceCompact: params.Options.ForceCompact,
	}

	var e engine.Engine
	switch backend {
	case BackendLevelDB:
		e, err = leveldb.Open(options)
	case BackendPebble:
		e, err = pebble.Open(options)
	case BackendBolt:
		e, err = bolt.Open(options)
	case BackendBoltPartitioned:
		e, err = bolt.OpenPartitioned(options)
	}
	if nil != err {
		return nil, err
	}

	h, err := New(e, params)
	if nil != err {
		e.Close()
		return nil, err
	}
	return h, nil
}

// New - wrap an already open engine
//
// the engine stays owned by the caller if an error is returned
func New(e engine.Engine, params Params) (*Handle, error) {
	h := &Handle{
		log:     logger.New("storage"),
		backend: params.Backend,
		path:    params.Path,
		engine:  e,
	}
	if params.ReadCacheExpiry > 0 {
		h.cache = newReadCache(params.ReadCacheExpiry)
	}

	if err := h.bootstrap(params.Obfuscate); nil != err {
		return nil, err
	}

	h.log.Infof("Using obfuscation key for %s: %s", h.displayPath(), h.obfuscation)
	return h, nil
}

// Destroy - irreversibly remove a store
func Destroy(backend Backend, path string) error {
	backend, err := ParseBackend(string(backend))
	if nil != err {
		return err
	}
	if "" == path {
		return fault.ErrMissingPath
	}
	switch backend {
	case BackendPebble:
		return pebble.Destroy(path)
	case BackendBolt, BackendBoltPartitioned:
		return bolt.Destroy(path)
	default:
		return leveldb.Destroy(path)
	}
}

// adopt the stored key or create one for an empty store
func (h *Handle) bootstrap(obfuscate bool) error {
	var key []byte
	found, err := h.Read(ObfuscateKeyKey, &key)
	if nil != err {
		return err
	}

	if found {
		o, err := obfuscation.New(key)
		if nil != err {
			h.log.Errorf("stored obfuscation key length: %d  error: %s", len(key), err)
			return err
		}
		h.obfuscation = o
		return nil
	}

	if !obfuscate {
		return nil
	}

	empty, err := h.IsEmpty()
	if nil != err {
		return err
	}
	if !empty {
		h.log.Warnf("not creating obfuscation key for existing data in: %s", h.displayPath())
		return nil
	}

	o, err := obfuscation.Random()
	if nil != err {
		return err
	}

	// the key record itself is stored without obfuscation
	if !h.obfuscation.IsNull() {
		fault.Panicf("storage: obfuscation key is set before it is written")
	}
	if err := h.Write(ObfuscateKeyKey, o.Bytes(), true); nil != err {
		return err
	}
	h.obfuscation = o

	h.log.Infof("Wrote new obfuscation key for %s: %s", h.displayPath(), o)
	return nil
}

func (h *Handle) displayPath() string {
	if "" == h.path {
		return h.engine.Name()
	}
	return filepath.Clean(h.path)
}
