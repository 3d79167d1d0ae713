// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

// FormatBytes - render data as a Go byte slice literal, eight bytes
// per line
//
// used by the dump tools to print records that can be pasted into
// test code
func FormatBytes(name string, data []byte) string {
	if 0 == len(data) {
		return name + " := []byte{}"
	}
	a := strings.Split(fmt.Sprintf("% #x", data), " ")
	var s strings.Builder
	s.WriteString(name)
	s.WriteString(" := []byte{")
	for i := 0; i < len(a); i += 1 {
		if 0 == i%8 {
			s.WriteString("\n\t")
		}
		s.WriteString(a[i])
		s.WriteString(", ")
	}
	s.WriteString("\n}")
	return s.String()
}
