// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dbwrapper/configuration"
	"github.com/bitmark-inc/dbwrapper/fault"
	"github.com/bitmark-inc/dbwrapper/storage"
)

// logger first, then the PANIC channel that depends on it
func initialiseLogging(logging logger.Configuration) error {
	if err := logger.Initialise(logging); nil != err {
		return err
	}
	if err := fault.Initialise(); nil != err {
		logger.Finalise()
		return err
	}
	return nil
}

func finaliseLogging() {
	fault.Finalise()
	logger.Finalise()
}

// open parameters that never write to the store being inspected
func readOnlyParams(config *configuration.Configuration) storage.Params {
	params := config.StorageParams()
	params.Obfuscate = false
	params.ReadCacheExpiry = 0
	params.Options.ForceCompact = false
	params.WipeData = false
	return params
}
