// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/dbwrapper/configuration"
	"github.com/bitmark-inc/dbwrapper/fault"
)

func TestStartLoggingSetsUpPanicChannel(t *testing.T) {
	m := &metadata{
		config: &configuration.Configuration{
			Logging: configuration.LoggerType{
				Directory: t.TempDir(),
				File:      "dbtool.log",
				Size:      1048576,
				Count:     10,
				Levels: configuration.LoglevelMap{
					logger.DefaultTag: "critical",
				},
			},
		},
		e: &bytes.Buffer{},
		w: &bytes.Buffer{},
	}

	require.NoError(t, m.startLogging(), "start logging")
	assert.True(t, m.logging, "logging flag not set")
	assert.Equal(t, fault.ErrAlreadyInitialised, fault.Initialise(), "PANIC channel not set up")

	assert.NoError(t, m.close(), "close")
	assert.False(t, m.logging, "logging flag still set")
}
