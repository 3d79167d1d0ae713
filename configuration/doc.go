// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read a configuration file into a structure
//
// the file type is chosen by its extension:
//
//	.lua .conf   Lua, the last value returned by the chunk is mapped
//	.hcl         HCL
//	.yaml .yml   YAML
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
package configuration
