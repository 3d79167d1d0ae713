// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - create a directory and all of its parents
func EnsureDirectory(directory string) error {
	return os.MkdirAll(directory, 0o700)
}

// RemoveTree - irreversibly delete a directory and everything below it
//
// a missing directory is not an error
func RemoveTree(directory string) error {
	if "" == directory {
		return nil
	}
	err := os.RemoveAll(directory)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	return nil
}
