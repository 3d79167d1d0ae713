// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/gogo/protobuf/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/dbwrapper/fault"
	"github.com/bitmark-inc/dbwrapper/stream"
)

func TestWriteExistsErase(t *testing.T) {
	forAllBackends(t, true, func(t *testing.T, h *Handle) {
		require.NoError(t, h.Write("abc", "123", false))

		exists, err := h.Exists("abc")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, h.Erase("abc", true))

		exists, err = h.Exists("abc")
		require.NoError(t, err)
		assert.False(t, exists)

		var s string
		found, err := h.Read("abc", &s)
		require.NoError(t, err)
		assert.False(t, found, "erased key is found")
		assert.Equal(t, "", s, "value set on a miss")
	})
}

func TestRoundTrip(t *testing.T) {
	forAllBackends(t, true, func(t *testing.T, h *Handle) {
		require.NoError(t, h.Write(stream.Tuple{byte('c'), "txid", uint32(1)}, uint64(5000000000), false))
		require.NoError(t, h.Write(int64(-3), true, false))
		require.NoError(t, h.Write("bytes", []byte{0, 1, 2, 0xff}, false))
		require.NoError(t, h.Write("proto", &types.StringValue{Value: "message"}, false))

		var amount uint64
		found, err := h.Read(stream.Tuple{byte('c'), "txid", uint32(1)}, &amount)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, uint64(5000000000), amount)

		var flag bool
		found, err = h.Read(int64(-3), &flag)
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, flag)

		var b []byte
		found, err = h.Read("bytes", &b)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte{0, 1, 2, 0xff}, b)

		message := &types.StringValue{}
		found, err = h.Read("proto", message)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "message", message.Value)
	})
}

func TestSerializationErrors(t *testing.T) {
	forAllBackends(t, false, func(t *testing.T, h *Handle) {
		err := h.Write(3.5, "v", false)
		assert.Equal(t, fault.ErrUnsupportedType, err)
		err = h.Write("k", struct{}{}, false)
		assert.Equal(t, fault.ErrUnsupportedType, err)

		var s string
		_, err = h.Read(3.5, &s)
		assert.Equal(t, fault.ErrUnsupportedType, err)
		_, err = h.Exists(3.5)
		assert.Equal(t, fault.ErrUnsupportedType, err)
		_, err = h.EstimateSize("a", 3.5)
		assert.Equal(t, fault.ErrUnsupportedType, err)

		empty, err := h.IsEmpty()
		require.NoError(t, err)
		assert.True(t, empty, "failed write left data")
	})
}

func TestReadDecodeFailure(t *testing.T) {
	forAllBackends(t, true, func(t *testing.T, h *Handle) {
		require.NoError(t, h.Write("k", "not a number", false))

		var n uint64
		found, err := h.Read("k", &n)
		assert.False(t, found)
		assert.True(t, fault.IsErrDecode(err), "error: %v", err)

		// the data is untouched
		var s string
		found, err = h.Read("k", &s)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "not a number", s)
	})
}

func TestBatchAtomicity(t *testing.T) {
	forAllBackends(t, true, func(t *testing.T, h *Handle) {
		b := h.NewBatch()
		defer b.Close()

		for i := uint32(0); i < 100; i += 1 {
			require.NoError(t, b.Write(i, i*i))
		}
		require.NoError(t, b.Erase(uint32(50)))
		assert.True(t, b.ApproximateSize() > 0)

		exists, err := h.Exists(uint32(1))
		require.NoError(t, err)
		assert.False(t, exists, "queued write visible before commit")

		require.NoError(t, h.WriteBatch(b, true))
		assert.Equal(t, 0, b.ApproximateSize(), "batch not reset")

		for i := uint32(0); i < 100; i += 1 {
			var v uint32
			found, err := h.Read(i, &v)
			require.NoError(t, err)
			if 50 == i {
				assert.False(t, found, "erased key present")
				continue
			}
			assert.True(t, found, "key: %d", i)
			assert.Equal(t, i*i, v)
		}

		// cleared operations never reach the store
		require.NoError(t, b.Write("cleared", "x"))
		b.Clear()
		require.NoError(t, h.WriteBatch(b, false))
		exists, err = h.Exists("cleared")
		require.NoError(t, err)
		assert.False(t, exists)

		// closed batches cannot be written
		require.NoError(t, b.Write("closed", "x"))
		require.NoError(t, b.Close())
		assert.Equal(t, fault.ErrBatchDone, h.WriteBatch(b, false))
		exists, err = h.Exists("closed")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestBatchFromOtherHandle(t *testing.T) {
	h1 := openMemory(t, BackendLevelDB, false)
	h2 := openMemory(t, BackendLevelDB, false)

	b := h1.NewBatch()
	defer b.Close()
	assert.Panics(t, func() { _ = h2.WriteBatch(b, false) })
}

func TestIteratorOrdering(t *testing.T) {
	forAllBackends(t, true, func(t *testing.T, h *Handle) {
		keys := []uint32{0x300, 0x1, 0xffffffff, 0x20, 0x1000, 0x2}

		b := h.NewBatch()
		for _, k := range keys {
			require.NoError(t, b.Write(stream.Tuple{byte('n'), k}, stream.Tuple{k, "value"}))
		}
		// duplicate write of a key
		require.NoError(t, b.Write(stream.Tuple{byte('n'), uint32(0x20)}, stream.Tuple{uint32(0x20), "value"}))
		require.NoError(t, h.WriteBatch(b, false))
		require.NoError(t, b.Close())

		iter, err := h.NewIterator()
		require.NoError(t, err)
		defer iter.Close()

		require.NoError(t, iter.Seek(stream.Tuple{byte('n')}))
		var previous []byte
		count := 0
		for ; iter.Valid(); iter.Next() {
			key := iter.Key()
			if nil != previous {
				assert.True(t, string(previous) < string(key), "keys out of order: %x then %x", previous, key)
			}
			previous = key

			var prefix byte
			var n uint32
			require.True(t, iter.GetKey(stream.Tuple{&prefix, &n}))
			assert.Equal(t, byte('n'), prefix)

			var v uint32
			var s string
			require.True(t, iter.GetValue(stream.Tuple{&v, &s}), "value does not decode")
			assert.Equal(t, n, v)
			assert.Equal(t, "value", s)
			count += 1
		}
		require.NoError(t, iter.Err())
		assert.Equal(t, len(keys), count)
		assert.False(t, iter.GetKey(new(string)), "decoded a key while invalid")
		assert.Nil(t, iter.Value())
	})
}

func TestIteratorDecodeFailureStaysValid(t *testing.T) {
	forAllBackends(t, true, func(t *testing.T, h *Handle) {
		require.NoError(t, h.Write("a", "text", false))
		require.NoError(t, h.Write("b", uint16(9), false))

		iter, err := h.NewIterator()
		require.NoError(t, err)
		defer iter.Close()

		require.NoError(t, iter.Seek("a"))
		require.True(t, iter.Valid())

		var n uint16
		assert.False(t, iter.GetValue(&n), "text decoded as a number")
		assert.True(t, iter.Valid(), "decode failure moved the iterator")

		var s string
		assert.True(t, iter.GetValue(&s))
		assert.Equal(t, "text", s)

		iter.Next()
		require.True(t, iter.Valid())
		assert.True(t, iter.GetValue(&n))
		assert.Equal(t, uint16(9), n)
	})
}

func TestIteratorMap(t *testing.T) {
	// without obfuscation there is no key record after the test keys
	forAllBackends(t, false, func(t *testing.T, h *Handle) {
		require.NoError(t, h.Write("x", "1", false))
		require.NoError(t, h.Write("y", "2", false))

		iter, err := h.NewIterator()
		require.NoError(t, err)
		defer iter.Close()

		values := map[string]string{}
		require.NoError(t, iter.Seek("x"))
		err = iter.Map(func(key []byte, value []byte) error {
			var k, v string
			require.NoError(t, stream.Unmarshal(key, &k))
			require.NoError(t, stream.Unmarshal(value, &v))
			values[k] = v
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"x": "1", "y": "2"}, values)

		require.NoError(t, iter.Seek("x"))
		err = iter.Map(func(key []byte, value []byte) error {
			return fault.ErrNotFoundKey
		})
		assert.Equal(t, fault.ErrNotFoundKey, err)
	})
}

// readers and iterators share the store without any writer
func TestConcurrentReaders(t *testing.T) {
	const (
		records    = 100
		readers    = 8
		iterations = 200
	)

	forAllBackends(t, true, func(t *testing.T, h *Handle) {
		b := h.NewBatch()
		for i := uint32(0); i < records; i += 1 {
			require.NoError(t, b.Write(stream.Tuple{byte('r'), i}, stream.Tuple{i, "value"}))
		}
		require.NoError(t, h.WriteBatch(b, false))
		require.NoError(t, b.Close())

		errs := make(chan error, readers)
		var wg sync.WaitGroup
		for r := 0; r < readers; r += 1 {
			wg.Add(1)
			go func(r int) {
				defer wg.Done()
				errs <- readAndIterate(h, uint32(r), records, iterations)
			}(r)
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			assert.NoError(t, err)
		}
	})
}

func readAndIterate(h *Handle, seed uint32, records uint32, iterations int) error {
	for i := 0; i < iterations; i += 1 {
		n := (seed*31 + uint32(i)) % records

		var v uint32
		var s string
		found, err := h.Read(stream.Tuple{byte('r'), n}, stream.Tuple{&v, &s})
		if nil != err {
			return err
		}
		if !found || n != v || "value" != s {
			return fmt.Errorf("read %d: found: %t  value: %d %q", n, found, v, s)
		}

		exists, err := h.Exists(stream.Tuple{byte('r'), n + records})
		if nil != err {
			return err
		}
		if exists {
			return fmt.Errorf("key %d should not exist", n+records)
		}
	}

	iter, err := h.NewIterator()
	if nil != err {
		return err
	}
	defer iter.Close()

	if err := iter.Seek(stream.Tuple{byte('r')}); nil != err {
		return err
	}
	seen := make(map[uint32]bool, records)
	count := uint32(0)
	for ; iter.Valid(); iter.Next() {
		var prefix byte
		var n uint32
		if !iter.GetKey(stream.Tuple{&prefix, &n}) || n >= records || seen[n] {
			return fmt.Errorf("iterate: bad key at position %d: %x", count, iter.Key())
		}
		seen[n] = true
		count += 1
	}
	if err := iter.Err(); nil != err {
		return err
	}
	if records != count {
		return fmt.Errorf("iterate: expected %d records, found %d", records, count)
	}
	return nil
}

func TestEstimateSize(t *testing.T) {
	forAllBackends(t, true, func(t *testing.T, h *Handle) {
		b := h.NewBatch()
		for i := uint32(0); i < 1000; i += 1 {
			require.NoError(t, b.Write(stream.Tuple{byte('e'), i}, "some value to take up space"))
		}
		require.NoError(t, h.WriteBatch(b, true))
		require.NoError(t, b.Close())

		_, err := h.EstimateSize(stream.Tuple{byte('e')}, stream.Tuple{byte('f')})
		require.NoError(t, err)

		// a reversed range is empty on every backend
		size, err := h.EstimateSize("z", "a")
		require.NoError(t, err, "reversed range")
		assert.Zero(t, size, "reversed range")

		_ = h.DynamicMemoryUsage()
	})
}

func TestCompact(t *testing.T) {
	for _, backend := range allBackends {
		h := openMemory(t, backend, true)
		err := h.Compact()
		switch backend {
		case BackendBolt, BackendBoltPartitioned:
			assert.Equal(t, fault.ErrNotCompactable, err, "backend: %s", backend)
		default:
			assert.NoError(t, err, "backend: %s", backend)
		}
	}
}

func TestPartitionedAccess(t *testing.T) {
	forAllBackends(t, true, func(t *testing.T, h *Handle) {
		b := h.NewBatch()
		defer b.Close()

		require.NoError(t, b.WriteSorted("K", "first"))
		require.NoError(t, h.WriteBatch(b, false))
		require.NoError(t, b.WriteSorted("K", "second"))
		require.NoError(t, h.WriteBatch(b, false))

		var s string
		found, err := h.ReadPartitioned("K", &s)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "second", s)

		exists, err := h.ExistsPartitioned("K")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, b.EraseSorted("K"))
		require.NoError(t, h.WriteBatch(b, false))

		exists, err = h.ExistsPartitioned("K")
		require.NoError(t, err)
		assert.False(t, exists, "sorted erase is not a miss")

		// only the partition aware engine keeps sorted keys apart
		exists, err = h.Exists("K")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCloseWithOpenBatch(t *testing.T) {
	for _, backend := range allBackends {
		t.Run(string(backend), func(t *testing.T) {
			h, err := Open(Params{Backend: backend, MemoryOnly: true, Obfuscate: true})
			require.NoError(t, err)

			b := h.NewBatch()
			require.NoError(t, b.Write("k", "v"))

			closed := make(chan error, 1)
			go func() {
				closed <- h.Close()
			}()

			select {
			case err := <-closed:
				require.NoError(t, err, "close")
			case <-time.After(5 * time.Second):
				t.Fatal("close blocked by an uncommitted batch")
			}

			err = h.WriteBatch(b, true)
			assert.True(t, fault.IsErrProcess(err), "write after close: %v", err)
		})
	}
}

func TestClosedHandle(t *testing.T) {
	h, err := Open(Params{Backend: BackendBolt, MemoryOnly: true})
	require.NoError(t, err)
	require.NoError(t, h.Close())

	var s string
	_, err = h.Read("k", &s)
	assert.Equal(t, fault.ErrDatabaseClosed, err)
}
