// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/dbwrapper/fault"
)

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	isHex := c.Bool("hex")
	key, err := decodeArgument("key", c.String("key"), isHex)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "key: %x\n", key)
	}

	var value []byte
	found := false
	if c.Bool("partitioned") {
		found, err = m.handle.ReadPartitioned(key, &value)
	} else {
		found, err = m.handle.Read(key, &value)
	}
	if nil != err {
		return err
	}
	if !found {
		return fault.ErrNotFoundKey
	}

	fmt.Fprintf(m.w, "%s\n", encodeValue(value, isHex))
	return nil
}
