// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/dbwrapper/storage"
)

func runWipe(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.Bool("yes") {
		return fmt.Errorf("refusing to wipe %q without --yes", m.config.Database.Directory)
	}

	backend := storage.Backend(m.config.Database.Backend)
	if err := storage.Destroy(backend, m.config.Database.Directory); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "wiped %s store: %s\n", backend, m.config.Database.Directory)
	}
	return nil
}
