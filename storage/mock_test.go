// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/dbwrapper/engine/mocks"
	"github.com/bitmark-inc/dbwrapper/fault"
	"github.com/bitmark-inc/dbwrapper/stream"
)

func obfuscateKeyBytes(t *testing.T) []byte {
	k, err := stream.Marshal(ObfuscateKeyKey)
	require.NoError(t, err)
	return k
}

func TestBootstrapOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	iter := mocks.NewMockIterator(ctl)
	batch := mocks.NewMockBatch(ctl)
	key := obfuscateKeyBytes(t)

	var written []byte

	e.EXPECT().Name().Return("mock").AnyTimes()
	e.EXPECT().DynamicMemoryUsage().Return(uint64(0)).AnyTimes()

	gomock.InOrder(
		e.EXPECT().Read(key).Return(nil, false, nil),
		e.EXPECT().NewIterator().Return(iter, nil),
		iter.EXPECT().SeekToFirst(),
		iter.EXPECT().Valid().Return(false),
		iter.EXPECT().Error().Return(nil),
		iter.EXPECT().Close().Return(nil),
		e.EXPECT().NewBatch().Return(batch),
		batch.EXPECT().Write(key, gomock.Any()).Do(func(k []byte, v []byte) {
			written = append([]byte{}, v...)
		}),
		e.EXPECT().WriteBatch(batch, true).Return(nil),
		batch.EXPECT().Close().Return(nil),
	)

	h, err := New(e, Params{Obfuscate: true})
	require.NoError(t, err)
	assert.False(t, h.Obfuscation().IsNull())

	// stored as a plain length prefixed key
	assert.Equal(t, append([]byte{0x08}, h.Obfuscation().Bytes()...), written)
}

func TestBootstrapAdoptsStoredKey(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	stored := []byte{0x08, 1, 2, 3, 4, 5, 6, 7, 8}
	e.EXPECT().Read(obfuscateKeyBytes(t)).Return(stored, true, nil)
	e.EXPECT().Name().Return("mock").AnyTimes()

	h, err := New(e, Params{Obfuscate: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, h.Obfuscation().Bytes())
}

func TestBootstrapFatalRead(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	e.EXPECT().Read(gomock.Any()).Return(nil, false, fault.Fatalf("Fatal LevelDB error: %s", "corrupted"))

	_, err := New(e, Params{Obfuscate: true})
	assert.True(t, fault.IsErrFatal(err))
	assert.Equal(t, "Fatal LevelDB error: corrupted", err.Error())
}

func TestFatalErrorsPropagate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	batch := mocks.NewMockBatch(ctl)
	fatal := fault.Fatalf("Fatal bolt error: %s", "disk full")

	e.EXPECT().Name().Return("mock").AnyTimes()
	e.EXPECT().DynamicMemoryUsage().Return(uint64(0)).AnyTimes()
	e.EXPECT().Read(obfuscateKeyBytes(t)).Return(nil, false, nil)

	h, err := New(e, Params{})
	require.NoError(t, err)

	k, err := stream.Marshal("k")
	require.NoError(t, err)

	e.EXPECT().Read(k).Return(nil, false, fatal)
	var s string
	found, err := h.Read("k", &s)
	assert.False(t, found)
	assert.Equal(t, fatal, err)

	e.EXPECT().Exists(k).Return(false, fatal)
	_, err = h.Exists("k")
	assert.Equal(t, fatal, err)

	e.EXPECT().NewBatch().Return(batch)
	batch.EXPECT().Write(k, gomock.Any())
	e.EXPECT().WriteBatch(batch, false).Return(fatal)
	batch.EXPECT().Close().Return(nil)
	assert.Equal(t, fatal, h.Write("k", "v", false))

	e.EXPECT().NewIterator().Return(nil, fatal)
	_, err = h.IsEmpty()
	assert.Equal(t, fatal, err)

	e.EXPECT().Close().Return(nil)
	assert.NoError(t, h.Close())
}

func TestSortedFallback(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	batch := mocks.NewMockBatch(ctl)
	e.EXPECT().Name().Return("mock").AnyTimes()
	e.EXPECT().Read(obfuscateKeyBytes(t)).Return(nil, false, nil)

	h, err := New(e, Params{})
	require.NoError(t, err)

	k, err := stream.Marshal("k")
	require.NoError(t, err)
	v, err := stream.Marshal("v")
	require.NoError(t, err)

	// a plain batch gets plain operations
	e.EXPECT().NewBatch().Return(batch)
	batch.EXPECT().Write(k, v)
	batch.EXPECT().Erase(k)

	b := h.NewBatch()
	require.NoError(t, b.WriteSorted("k", "v"))
	require.NoError(t, b.EraseSorted("k"))
	assert.False(t, b.sorted)

	// a plain engine gets a plain read
	e.EXPECT().Read(k).Return(v, true, nil)
	var s string
	found, err := h.ReadPartitioned("k", &s)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", s)

	// sorted batches are used when available
	sorted := mocks.NewMockSortedBatch(ctl)
	e.EXPECT().NewBatch().Return(sorted)
	sorted.EXPECT().WriteSorted(k, v)
	sorted.EXPECT().EraseSorted(k)

	b = h.NewBatch()
	require.NoError(t, b.WriteSorted("k", "v"))
	require.NoError(t, b.EraseSorted("k"))
	assert.True(t, b.sorted)
}
