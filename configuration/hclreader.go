// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"

	"github.com/hashicorp/hcl"
)

// read a configuration file and parse using hcl
func parseHCL(fileName string, config interface{}) error {
	b, err := os.ReadFile(fileName)
	if nil != err {
		return err
	}

	return hcl.Unmarshal(b, config)
}
