// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stream_test

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/gogo/protobuf/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/dbwrapper/fault"
	"github.com/bitmark-inc/dbwrapper/stream"
)

// fixed size record using the binary marshaler interfaces
type point struct {
	x, y byte
}

func (p point) MarshalBinary() ([]byte, error) {
	return []byte{p.x, p.y}, nil
}

func (p *point) UnmarshalBinary(data []byte) error {
	if 2 != len(data) {
		return fmt.Errorf("point needs 2 bytes, got: %d", len(data))
	}
	p.x = data[0]
	p.y = data[1]
	return nil
}

func TestMarshal(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected string
	}{
		{"", "00"},
		{"abc", "03616263"},
		{"\x00obfuscate_key", "0e006f62667573636174655f6b6579"},
		{[]byte{}, "00"},
		{[]byte{0xde, 0xad}, "02dead"},
		{true, "01"},
		{false, "00"},
		{uint8(0xfe), "fe"},
		{int8(-1), "ff"},
		{uint16(0x0102), "0201"},
		{int16(-2), "feff"},
		{uint32(0x01020304), "04030201"},
		{int32(1), "01000000"},
		{uint64(0x0102030405060708), "0807060504030201"},
		{int64(-1), "ffffffffffffffff"},
		{point{1, 2}, "0102"},
		{stream.Tuple{byte('b'), "k", uint32(7)}, "62016b07000000"},
	}

	for i, item := range tests {
		b, err := stream.Marshal(item.value)
		require.NoError(t, err, "%d: marshal %v", i, item.value)
		assert.Equal(t, item.expected, hex.EncodeToString(b), "%d: marshal %v", i, item.value)
	}
}

func TestMarshalLongString(t *testing.T) {
	s := string(make([]byte, 200))
	b, err := stream.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xc8, 0x01}, b[:2])
	assert.Len(t, b, 202)

	var out string
	require.NoError(t, stream.Unmarshal(b, &out))
	assert.Equal(t, s, out)
}

func TestMarshalUnsupported(t *testing.T) {
	for _, v := range []interface{}{1, 1.5, struct{}{}, nil, stream.Tuple{"a", 3}} {
		_, err := stream.Marshal(v)
		assert.Equal(t, fault.ErrUnsupportedType, err, "value: %#v", v)
	}

	var n int
	err := stream.Unmarshal([]byte{1}, &n)
	assert.Equal(t, fault.ErrUnsupportedType, err)
}

func TestUnmarshal(t *testing.T) {
	var s string
	require.NoError(t, stream.Unmarshal([]byte{3, 'x', 'y', 'z'}, &s))
	assert.Equal(t, "xyz", s)

	var b []byte
	source := []byte{2, 9, 8}
	require.NoError(t, stream.Unmarshal(source, &b))
	assert.Equal(t, []byte{9, 8}, b)
	source[1] = 0
	assert.Equal(t, []byte{9, 8}, b, "result shares memory with the input")

	var flag bool
	require.NoError(t, stream.Unmarshal([]byte{1}, &flag))
	assert.True(t, flag)

	var u64 uint64
	require.NoError(t, stream.Unmarshal([]byte{8, 7, 6, 5, 4, 3, 2, 1}, &u64))
	assert.Equal(t, uint64(0x0102030405060708), u64)

	var i16 int16
	require.NoError(t, stream.Unmarshal([]byte{0xfe, 0xff}, &i16))
	assert.Equal(t, int16(-2), i16)

	var p point
	require.NoError(t, stream.Unmarshal([]byte{5, 6}, &p))
	assert.Equal(t, point{5, 6}, p)

	var prefix byte
	var name string
	var index uint32
	require.NoError(t, stream.Unmarshal([]byte{0x62, 1, 'k', 7, 0, 0, 0}, stream.Tuple{&prefix, &name, &index}))
	assert.Equal(t, byte('b'), prefix)
	assert.Equal(t, "k", name)
	assert.Equal(t, uint32(7), index)
}

func TestUnmarshalFailures(t *testing.T) {
	var s string
	var flag bool
	var u32 uint32
	var p point

	tests := []struct {
		data  []byte
		value interface{}
	}{
		{[]byte{}, &s},
		{[]byte{5, 'a'}, &s},
		{[]byte{0x80}, &s},
		{[]byte{1, 'a', 'b'}, &s},
		{[]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01, 'a'}, &s}, // length 2^35
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x08, 'a'}, &s},       // length above 2^31
		{[]byte{}, &flag},
		{[]byte{2}, &flag},
		{[]byte{1, 2, 3}, &u32},
		{[]byte{1, 2, 3, 4, 5}, &u32},
		{[]byte{1, 2, 3}, &p},
		{[]byte{3, 'a'}, stream.Tuple{&s, &u32}},
	}

	for i, item := range tests {
		err := stream.Unmarshal(item.data, item.value)
		assert.Error(t, err, "%d: expected an error", i)
		assert.True(t, fault.IsErrDecode(err), "%d: not a decode error: %v", i, err)
	}
}

func TestProtobuf(t *testing.T) {
	message := &types.StringValue{Value: "a protobuf value"}
	b, err := stream.Marshal(message)
	require.NoError(t, err)

	out := &types.StringValue{}
	require.NoError(t, stream.Unmarshal(b, out))
	assert.Equal(t, "a protobuf value", out.Value)

	err = stream.Unmarshal([]byte{0x0a, 0x20, 'x'}, out)
	assert.True(t, fault.IsErrDecode(err), "bad protobuf: %v", err)
}
