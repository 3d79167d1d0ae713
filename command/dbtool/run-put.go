// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runPut(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	isHex := c.Bool("hex")
	key, err := decodeArgument("key", c.String("key"), isHex)
	if nil != err {
		return err
	}
	value, err := decodeArgument("value", c.String("value"), isHex)
	if nil != err {
		return err
	}

	batch := m.handle.NewBatch()
	defer batch.Close()

	if c.Bool("sorted") {
		err = batch.WriteSorted(key, value)
	} else {
		err = batch.Write(key, value)
	}
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "key: %x  batch size: %d\n", key, batch.ApproximateSize())
	}

	return m.handle.WriteBatch(batch, true)
}
