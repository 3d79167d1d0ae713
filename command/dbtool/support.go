// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
)

// command line text to record bytes
func decodeArgument(name string, s string, isHex bool) ([]byte, error) {
	if "" == s {
		return nil, fmt.Errorf("%s is required", name)
	}
	if !isHex {
		return []byte(s), nil
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fmt.Errorf("%s: %q is not hex: %s", name, s, err)
	}
	if 0 == len(b) {
		return nil, fmt.Errorf("%s is required", name)
	}
	return b, nil
}

// record bytes to display text
func encodeValue(b []byte, isHex bool) string {
	if isHex {
		return hex.EncodeToString(b)
	}
	return string(b)
}
