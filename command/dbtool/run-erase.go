// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runErase(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := decodeArgument("key", c.String("key"), c.Bool("hex"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "erase key: %x\n", key)
	}

	if !c.Bool("sorted") {
		return m.handle.Erase(key, true)
	}

	batch := m.handle.NewBatch()
	defer batch.Close()

	if err := batch.EraseSorted(key); nil != err {
		return err
	}
	return m.handle.WriteBatch(batch, true)
}
