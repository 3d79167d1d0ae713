// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pebble_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/dbwrapper/engine"
	"github.com/bitmark-inc/dbwrapper/engine/pebble"
	"github.com/bitmark-inc/dbwrapper/fault"
)

func TestMain(m *testing.M) {
	logDirectory, err := os.MkdirTemp("", "pebble-test-log")
	if nil != err {
		panic(fmt.Sprintf("log directory creation failed: %s", err))
	}
	logConfig := logger.Configuration{
		Directory: logDirectory,
		File:      "pebble.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err := logger.Initialise(logConfig); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	result := m.Run()
	logger.Finalise()
	os.RemoveAll(logDirectory)
	os.Exit(result)
}

func TestEngine(t *testing.T) {
	tests := []struct {
		name string
		fn   func(t *testing.T, e *pebble.Engine)
	}{
		{name: "read_write_erase", fn: testReadWriteErase},
		{name: "batch_reuse", fn: testBatchReuse},
		{name: "batch_clear", fn: testBatchClear},
		{name: "batch_close", fn: testBatchClose},
		{name: "iterator_order", fn: testIteratorOrder},
		{name: "compact", fn: testCompact},
		{name: "estimate_size_range", fn: testEstimateSizeRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := pebble.Open(engine.Options{MemoryOnly: true, CacheBytes: 8 << 20})
			require.NoError(t, err)
			defer e.Close()

			tc.fn(t, e)
		})
	}
}

func testReadWriteErase(t *testing.T, e *pebble.Engine) {
	b := e.NewBatch()
	defer b.Close()

	b.Write([]byte("abc"), []byte("123"))
	require.NoError(t, e.WriteBatch(b, true))

	value, found, err := e.Read([]byte("abc"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("123"), value)

	exists, err := e.Exists([]byte("abc"))
	require.NoError(t, err)
	assert.True(t, exists)

	b.Erase([]byte("abc"))
	require.NoError(t, e.WriteBatch(b, false))

	exists, err = e.Exists([]byte("abc"))
	require.NoError(t, err)
	assert.False(t, exists)

	_, found, err = e.Read([]byte("abc"))
	require.NoError(t, err)
	assert.False(t, found)
}

func testBatchReuse(t *testing.T, e *pebble.Engine) {
	b := e.NewBatch()
	defer b.Close()

	assert.Equal(t, 0, b.ApproximateSize())
	b.Write([]byte("k1"), []byte("v1"))
	assert.True(t, b.ApproximateSize() > 4, "size not counted")
	require.NoError(t, e.WriteBatch(b, false))
	assert.Equal(t, 0, b.ApproximateSize(), "batch not reset after commit")

	b.Write([]byte("k2"), []byte("v2"))
	require.NoError(t, e.WriteBatch(b, false))

	for _, k := range []string{"k1", "k2"} {
		exists, err := e.Exists([]byte(k))
		require.NoError(t, err)
		assert.True(t, exists, "missing: %s", k)
	}
}

func testBatchClear(t *testing.T, e *pebble.Engine) {
	b := e.NewBatch()
	defer b.Close()

	b.Write([]byte("k"), []byte("v"))
	b.Clear()
	assert.Equal(t, 0, b.ApproximateSize())
	require.NoError(t, e.WriteBatch(b, false))

	exists, err := e.Exists([]byte("k"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func testBatchClose(t *testing.T, e *pebble.Engine) {
	b := e.NewBatch()
	b.Write([]byte("k"), []byte("v"))
	require.NoError(t, b.Close())
	assert.ErrorIs(t, b.Close(), fault.ErrBatchDone)
	assert.ErrorIs(t, e.WriteBatch(b, false), fault.ErrBatchDone)

	exists, err := e.Exists([]byte("k"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func testIteratorOrder(t *testing.T, e *pebble.Engine) {
	b := e.NewBatch()
	defer b.Close()
	for _, k := range []string{"m", "c", "x", "a"} {
		b.Write([]byte(k), []byte(k+k))
	}
	require.NoError(t, e.WriteBatch(b, false))

	iter, err := e.NewIterator()
	require.NoError(t, err)
	defer iter.Close()

	iter.Next()
	assert.False(t, iter.Valid(), "next moved an unpositioned iterator")

	keys := []string{}
	for iter.SeekToFirst(); iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
		assert.Equal(t, string(iter.Key())+string(iter.Key()), string(iter.Value()))
	}
	assert.Equal(t, []string{"a", "c", "m", "x"}, keys)

	iter.Seek([]byte("d"))
	require.True(t, iter.Valid())
	assert.Equal(t, []byte("m"), iter.Key())
	assert.NoError(t, iter.Error())
}

func testCompact(t *testing.T, e *pebble.Engine) {
	var c engine.Compactor = e
	require.NoError(t, c.Compact(), "empty database")

	b := e.NewBatch()
	defer b.Close()
	b.Write([]byte("a"), []byte("1"))
	b.Write([]byte("z"), []byte("2"))
	require.NoError(t, e.WriteBatch(b, true))
	require.NoError(t, c.Compact())

	value, found, err := e.Read([]byte("z"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("2"), value)

	size, err := e.EstimateSize([]byte("a"), []byte("zz"))
	require.NoError(t, err)
	assert.True(t, size > 0, "compacted data has no size")
	assert.True(t, e.DynamicMemoryUsage() > 0)
}

func testEstimateSizeRange(t *testing.T, e *pebble.Engine) {
	size, err := e.EstimateSize([]byte("a"), nil)
	require.NoError(t, err, "empty database")
	assert.Zero(t, size)

	b := e.NewBatch()
	defer b.Close()
	b.Write([]byte("a"), []byte("1"))
	b.Write([]byte("m"), []byte("2"))
	require.NoError(t, e.WriteBatch(b, true))

	size, err = e.EstimateSize([]byte("z"), []byte("a"))
	require.NoError(t, err, "reversed range is not an engine failure")
	assert.Zero(t, size)

	size, err = e.EstimateSize([]byte("m"), []byte("m"))
	require.NoError(t, err, "empty range")
	assert.Zero(t, size)

	_, err = e.EstimateSize([]byte("a"), nil)
	require.NoError(t, err, "open ended range")
}

func TestOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	_, err := pebble.Open(engine.Options{})
	assert.Equal(t, fault.ErrMissingPath, err)

	e, err := pebble.Open(engine.Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, e.Name())
	b := e.NewBatch()
	b.Write([]byte("k"), []byte("v"))
	require.NoError(t, e.WriteBatch(b, true))
	require.NoError(t, b.Close())
	require.NoError(t, e.Close())

	_, _, err = e.Read([]byte("k"))
	assert.Equal(t, fault.ErrDatabaseClosed, err)

	e, err = pebble.Open(engine.Options{Path: path, ForceCompact: true})
	require.NoError(t, err)
	_, found, err := e.Read([]byte("k"))
	require.NoError(t, err)
	assert.True(t, found, "record lost on reopen")
	require.NoError(t, e.Close())

	e, err = pebble.Open(engine.Options{Path: path, WipeData: true})
	require.NoError(t, err)
	iter, err := e.NewIterator()
	require.NoError(t, err)
	iter.SeekToFirst()
	assert.False(t, iter.Valid(), "wiped database is not empty")
	require.NoError(t, iter.Close())
	require.NoError(t, e.Close())

	require.NoError(t, pebble.Destroy(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
