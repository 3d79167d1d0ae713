// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dbwrapper/configuration"
	"github.com/bitmark-inc/dbwrapper/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "early", HasArg: getoptions.NO_ARGUMENT, Short: 'e'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "ascii", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "literal", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "reserved", HasArg: getoptions.NO_ARGUMENT, Short: 'r'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 1 || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--count=N] [--early] [--colour] [--ascii|--literal] [--reserved] --file=FILE [hex-key-prefix]", program)
	}

	d := dumper{
		w:         os.Stdout,
		count:     10,
		earlyStop: len(options["early"]) > 0,
		ascii:     len(options["ascii"]) > 0,
		literal:   len(options["literal"]) > 0,
		reserved:  len(options["reserved"]) > 0,
		colour:    len(options["colour"]) > 0,
		verbose:   len(options["verbose"]) > 0,
	}

	if len(options["count"]) > 0 {
		d.count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if d.count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, d.count)
		}
	}

	if len(arguments) > 0 {
		d.prefix, err = hex.DecodeString(arguments[0])
		if nil != err {
			exitwithstatus.Message("%s: convert prefix error: %s", program, err)
		}
	}

	config, err := configuration.GetConfiguration(options["file"][0])
	if nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "dbdump.log",
		Size:      1048576,
		Count:     10,
		Console:   d.verbose,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = initialiseLogging(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer finaliseLogging()

	handle, err := storage.Open(readOnlyParams(config))
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer handle.Close()

	if err := d.run(handle); nil != err {
		exitwithstatus.Message("%s: dump failed with error: %s", program, err)
	}
}
