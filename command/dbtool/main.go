// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/dbwrapper/configuration"
	"github.com/bitmark-inc/dbwrapper/fault"
	"github.com/bitmark-inc/dbwrapper/storage"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	handle  *storage.Handle
	logging bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "dbtool"
	app.Usage = "inspect and maintain a key/value store"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "dbwrapper.conf",
			Usage: " configuration `FILE` [.conf|.lua|.hcl|.yaml|.yml]",
		},
	}

	keyFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "key, k",
			Value: "",
			Usage: "*record `KEY`",
		},
		cli.BoolFlag{
			Name:  "hex, x",
			Usage: " key and value are hex encoded",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "info",
			Usage:     "display store details",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "get",
			Usage:     "read a single value",
			ArgsUsage: "\n   (* = required)",
			Flags: append(keyFlags,
				cli.BoolFlag{
					Name:  "partitioned, p",
					Usage: " search older partitions for the newest sorted write",
				},
			),
			Action: runGet,
		},
		{
			Name:      "put",
			Usage:     "store a single value",
			ArgsUsage: "\n   (* = required)",
			Flags: append(keyFlags,
				cli.StringFlag{
					Name:  "value, V",
					Value: "",
					Usage: "*record `VALUE`",
				},
				cli.BoolFlag{
					Name:  "sorted, s",
					Usage: " write into the current partition",
				},
			),
			Action: runPut,
		},
		{
			Name:      "erase",
			Usage:     "remove a single value",
			ArgsUsage: "\n   (* = required)",
			Flags: append(keyFlags,
				cli.BoolFlag{
					Name:  "sorted, s",
					Usage: " mark as erased in the current partition",
				},
			),
			Action: runErase,
		},
		{
			Name:      "compact",
			Usage:     "compact the whole key range",
			ArgsUsage: " ",
			Action:    runCompact,
		},
		{
			Name:      "wipe",
			Usage:     "irreversibly remove the store",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "yes, y",
					Usage: "*confirm removal",
				},
			},
			Action: runWipe,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "help", "h":
			return nil
		}

		file := c.GlobalString("config-file")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		m := &metadata{
			file:    file,
			config:  config,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		if err := m.startLogging(); nil != err {
			return err
		}

		// wipe must not hold the store open
		if "wipe" == command {
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "opening %s store: %s\n", config.Database.Backend, config.Database.Directory)
		}
		m.handle, err = storage.Open(config.StorageParams())
		return err
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		return m.close()
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

// logger first, then the PANIC channel that depends on it
func (m *metadata) startLogging() error {
	logging, err := m.config.LoggerConfiguration()
	if nil != err {
		return err
	}
	if err := logger.Initialise(logging); nil != err {
		return err
	}
	m.logging = true

	return fault.Initialise()
}

// release the store before the logger
func (m *metadata) close() error {
	var err error
	if nil != m.handle {
		err = m.handle.Close()
		m.handle = nil
	}
	if m.logging {
		fault.Finalise()
		logger.Finalise()
		m.logging = false
	}
	return err
}
