// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stream

import (
	"encoding"
	"encoding/binary"

	"github.com/gogo/protobuf/proto"

	"github.com/bitmark-inc/dbwrapper/fault"
	"github.com/bitmark-inc/dbwrapper/util"
)

// maximum length accepted for a length prefixed item
const maximumItemLength = 0x7fffffff

// Tuple - items serialized one after another
//
// for Unmarshal every item must be a pointer
type Tuple []interface{}

// Marshal - convert a value to bytes
func Marshal(v interface{}) ([]byte, error) {
	return appendItem(make([]byte, 0, 32), v)
}

// Unmarshal - decode all of data into the value pointed to by v
//
// data that does not decode completely gives a DecodeError
func Unmarshal(data []byte, v interface{}) error {
	n, err := decodeItem(data, v)
	if nil != err {
		return err
	}
	if n != len(data) {
		return fault.Decodef("%d bytes of trailing data", len(data)-n)
	}
	return nil
}

func appendItem(buffer []byte, v interface{}) ([]byte, error) {
	switch value := v.(type) {

	case []byte:
		buffer = util.AppendVarint64(buffer, uint64(len(value)))
		return append(buffer, value...), nil

	case string:
		buffer = util.AppendVarint64(buffer, uint64(len(value)))
		return append(buffer, value...), nil

	case bool:
		if value {
			return append(buffer, 1), nil
		}
		return append(buffer, 0), nil

	case uint8:
		return append(buffer, value), nil
	case int8:
		return append(buffer, byte(value)), nil
	case uint16:
		return binary.LittleEndian.AppendUint16(buffer, value), nil
	case int16:
		return binary.LittleEndian.AppendUint16(buffer, uint16(value)), nil
	case uint32:
		return binary.LittleEndian.AppendUint32(buffer, value), nil
	case int32:
		return binary.LittleEndian.AppendUint32(buffer, uint32(value)), nil
	case uint64:
		return binary.LittleEndian.AppendUint64(buffer, value), nil
	case int64:
		return binary.LittleEndian.AppendUint64(buffer, uint64(value)), nil

	case Tuple:
		var err error
		for _, item := range value {
			buffer, err = appendItem(buffer, item)
			if nil != err {
				return nil, err
			}
		}
		return buffer, nil

	case encoding.BinaryMarshaler:
		b, err := value.MarshalBinary()
		if nil != err {
			return nil, err
		}
		return append(buffer, b...), nil

	case proto.Message:
		b, err := proto.Marshal(value)
		if nil != err {
			return nil, err
		}
		return append(buffer, b...), nil

	default:
		return nil, fault.ErrUnsupportedType
	}
}

// decode one item from the start of data returning the bytes used
func decodeItem(data []byte, v interface{}) (int, error) {
	switch value := v.(type) {

	case *[]byte:
		b, n, err := lengthPrefixed(data)
		if nil != err {
			return 0, err
		}
		*value = append([]byte{}, b...)
		return n, nil

	case *string:
		b, n, err := lengthPrefixed(data)
		if nil != err {
			return 0, err
		}
		*value = string(b)
		return n, nil

	case *bool:
		if len(data) < 1 {
			return 0, fault.ErrTruncatedData
		}
		switch data[0] {
		case 0:
			*value = false
		case 1:
			*value = true
		default:
			return 0, fault.Decodef("invalid boolean: 0x%02x", data[0])
		}
		return 1, nil

	case *uint8:
		if len(data) < 1 {
			return 0, fault.ErrTruncatedData
		}
		*value = data[0]
		return 1, nil
	case *int8:
		if len(data) < 1 {
			return 0, fault.ErrTruncatedData
		}
		*value = int8(data[0])
		return 1, nil
	case *uint16:
		if len(data) < 2 {
			return 0, fault.ErrTruncatedData
		}
		*value = binary.LittleEndian.Uint16(data)
		return 2, nil
	case *int16:
		if len(data) < 2 {
			return 0, fault.ErrTruncatedData
		}
		*value = int16(binary.LittleEndian.Uint16(data))
		return 2, nil
	case *uint32:
		if len(data) < 4 {
			return 0, fault.ErrTruncatedData
		}
		*value = binary.LittleEndian.Uint32(data)
		return 4, nil
	case *int32:
		if len(data) < 4 {
			return 0, fault.ErrTruncatedData
		}
		*value = int32(binary.LittleEndian.Uint32(data))
		return 4, nil
	case *uint64:
		if len(data) < 8 {
			return 0, fault.ErrTruncatedData
		}
		*value = binary.LittleEndian.Uint64(data)
		return 8, nil
	case *int64:
		if len(data) < 8 {
			return 0, fault.ErrTruncatedData
		}
		*value = int64(binary.LittleEndian.Uint64(data))
		return 8, nil

	case Tuple:
		total := 0
		for _, item := range value {
			n, err := decodeItem(data[total:], item)
			if nil != err {
				return 0, err
			}
			total += n
		}
		return total, nil

	case *Tuple:
		return decodeItem(data, *value)

	case encoding.BinaryUnmarshaler:
		if err := value.UnmarshalBinary(data); nil != err {
			return 0, fault.Decodef("binary: %s", err)
		}
		return len(data), nil

	case proto.Message:
		if err := proto.Unmarshal(data, value); nil != err {
			return 0, fault.Decodef("protobuf: %s", err)
		}
		return len(data), nil

	default:
		return 0, fault.ErrUnsupportedType
	}
}

func lengthPrefixed(data []byte) ([]byte, int, error) {
	if 0 == len(data) {
		return nil, 0, fault.ErrTruncatedData
	}
	// a length beyond the maximum cannot be satisfied by any buffer
	length, n := util.ClippedVarint64(data, 0, maximumItemLength)
	if 0 == n {
		return nil, 0, fault.ErrTruncatedData
	}
	end := n + length
	if end > len(data) {
		return nil, 0, fault.ErrTruncatedData
	}
	return data[n:end], end, nil
}
