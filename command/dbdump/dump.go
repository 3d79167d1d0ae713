// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bitmark-inc/dbwrapper/storage"
	"github.com/bitmark-inc/dbwrapper/stream"
	"github.com/bitmark-inc/dbwrapper/util"
)

// colours
const (
	keyColour1 = "\033[1;36m"
	keyColour2 = "\033[1;31m"
	valColour1 = "\033[1;33m"
	valColour2 = "\033[1;34m"
	endColour  = "\033[0m"
)

type dumper struct {
	w         io.Writer
	prefix    []byte
	count     int
	earlyStop bool // stop if prefix no longer matches
	ascii     bool
	literal   bool
	reserved  bool // include the obfuscation key record
	colour    bool
	verbose   bool
}

// print up to count records starting at prefix
func (d *dumper) run(handle *storage.Handle) error {

	reservedKey, err := stream.Marshal(storage.ObfuscateKeyKey)
	if nil != err {
		return err
	}

	if d.verbose {
		fmt.Fprintf(d.w, "store: %s  backend: %s  obfuscation: %s\n", handle.Name(), handle.Backend(), handle.Obfuscation())
	}

	iter, err := handle.NewIterator()
	if nil != err {
		return err
	}
	defer iter.Close()

	if len(d.prefix) > 0 {
		iter.SeekRaw(d.prefix)
	} else {
		iter.SeekToFirst()
	}

	ck1 := ""
	ck2 := ""
	cv1 := ""
	cv2 := ""
	ce := ""
	if d.colour {
		ck1 = keyColour1
		ck2 = keyColour2
		cv1 = valColour1
		cv2 = valColour2
		ce = endColour
	}

	i := 0
print_loop:
	for ; iter.Valid() && i < d.count; iter.Next() {
		key := iter.Key()
		if !d.reserved && bytes.Equal(key, reservedKey) {
			continue print_loop
		}
		if d.earlyStop && !bytes.HasPrefix(key, d.prefix) {
			fmt.Fprintf(d.w, "*** early stop\n")
			break print_loop
		}

		value := iter.Value()
		if bytes.Equal(key, reservedKey) {
			// stored in the clear
			handle.Obfuscation().Apply(value, 0)
		}

		fmt.Fprintf(d.w, "%d: %sKey: %s%x%s\n", i, ck1, ck2, key, ce)
		switch {
		case d.literal:
			fmt.Fprintf(d.w, "%s\n", util.FormatBytes(fmt.Sprintf("value%d", i), value))
		case d.ascii:
			prefix := fmt.Sprintf("%d: %sVal: %s", i, cv1, cv2)
			hexDump(d.w, prefix, ce, value)
		default:
			fmt.Fprintf(d.w, "%d: %sVal: %s%x%s\n", i, cv1, cv2, value, ce)
		}
		i += 1
	}
	return iter.Err()
}

// dump hex data with an ascii column
func hexDump(w io.Writer, prefix string, suffix string, data []byte) {
	address := 0
	const bytesPerLine = 32
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Fprintf(w, "%s%04x  ", prefix, address)
		address += bytesPerLine
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Fprintf(w, " ")
			}
			if i+j < len(data) {
				fmt.Fprintf(w, "%02x ", data[i+j])
			} else {
				fmt.Fprintf(w, "   ")
			}
		}
		fmt.Fprintf(w, " |")
	ascii_loop:
		for j := 0; j < bytesPerLine; j += 1 {
			if i+j < len(data) {
				c := data[i+j]
				if c < 32 || c >= 127 {
					c = '.'
				}
				fmt.Fprintf(w, "%c", c)

			} else {
				break ascii_loop
			}
		}
		fmt.Fprintf(w, "|%s\n", suffix)
	}
}
