// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"
)

func runCompact(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	start := time.Now()
	if err := m.handle.Compact(); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "compacted %s in %s\n", m.handle.Name(), time.Since(start))
	}
	return nil
}
