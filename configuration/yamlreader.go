// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"

	"gopkg.in/yaml.v3"
)

func parseYAML(fileName string, config interface{}) error {
	b, err := os.ReadFile(fileName)
	if nil != err {
		return err
	}

	return yaml.Unmarshal(b, config)
}
