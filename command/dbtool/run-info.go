// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type infoReply struct {
	Backend        string `json:"backend"`
	Name           string `json:"name"`
	Directory      string `json:"directory"`
	ObfuscationKey string `json:"obfuscation_key"`
	Empty          bool   `json:"empty"`
	MemoryUsage    uint64 `json:"memory_usage"`
	ConfigFile     string `json:"config_file"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	empty, err := m.handle.IsEmpty()
	if nil != err {
		return err
	}

	info := infoReply{
		Backend:        string(m.handle.Backend()),
		Name:           m.handle.Name(),
		Directory:      m.config.Database.Directory,
		ObfuscationKey: m.handle.Obfuscation().String(),
		Empty:          empty,
		MemoryUsage:    m.handle.DynamicMemoryUsage(),
		ConfigFile:     m.file,
	}

	return printJson(m.w, info)
}
