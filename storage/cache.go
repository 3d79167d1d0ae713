// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
)

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

type cacheData struct {
	op    dbOperation
	value []byte
}

// readCache - raw engine bytes of recent reads, misses are kept as
// dbDelete entries
//
// the generation changes on every invalidation so a read that raced a
// commit cannot put its stale result back
type readCache struct {
	sync.RWMutex
	gen   uint64
	cache *cache.Cache
}

func newReadCache(expiry time.Duration) *readCache {
	return &readCache{
		cache: cache.New(expiry, 2*expiry),
	}
}

// third value is false if the key is not cached
func (c *readCache) get(key []byte) ([]byte, bool, bool) {
	obj, cached := c.cache.Get(string(key))
	if !cached {
		return nil, false, false
	}
	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, false, true
	}
	return data.value, true, true
}

func (c *readCache) generation() uint64 {
	c.RLock()
	defer c.RUnlock()
	return c.gen
}

func (c *readCache) set(generation uint64, key []byte, value []byte, found bool) {
	c.Lock()
	defer c.Unlock()
	if generation != c.gen {
		return
	}
	data := cacheData{op: dbDelete}
	if found {
		data = cacheData{op: dbPut, value: append([]byte{}, value...)}
	}
	c.cache.SetDefault(string(key), data)
}

func (c *readCache) invalidate(keys map[string]struct{}) {
	c.Lock()
	defer c.Unlock()
	c.gen += 1
	for k := range keys {
		c.cache.Delete(k)
	}
}

func (c *readCache) flush() {
	c.Lock()
	defer c.Unlock()
	c.gen += 1
	c.cache.Flush()
}
