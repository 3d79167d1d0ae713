// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bitmark-inc/dbwrapper/fault"
	"github.com/bitmark-inc/dbwrapper/util"
)

// ParseConfigurationFile - read a configuration file and assign the
// results to a configuration structure
//
// config must be a pointer to a struct, fields already set are kept
// unless the file overrides them
func ParseConfigurationFile(fileName string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}

	// now sure item is a pointer, make sure it points to some kind of struct
	if rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	if !util.EnsureFileExists(fileName) {
		return fault.ErrNotFoundConfigFile
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".lua", ".conf":
		return parseLua(fileName, config)
	case ".hcl":
		return parseHCL(fileName, config)
	case ".yaml", ".yml":
		return parseYAML(fileName, config)
	default:
		return fault.ErrUnknownConfigFileType
	}
}
