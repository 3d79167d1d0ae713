// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dbwrapper/storage"
	"github.com/bitmark-inc/dbwrapper/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultDatabaseDirectory = "data"
	defaultCacheSize         = 8 * 1024 * 1024

	defaultLogDirectory = "log"
	defaultLogFile      = "dbwrapper.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// DatabaseType - how to open the store
type DatabaseType struct {
	Backend         string `gluamapper:"backend" hcl:"backend" yaml:"backend"`
	Directory       string `gluamapper:"directory" hcl:"directory" yaml:"directory"`
	CacheSize       int    `gluamapper:"cache_size" hcl:"cache_size" yaml:"cache_size"`
	Obfuscate       bool   `gluamapper:"obfuscate" hcl:"obfuscate" yaml:"obfuscate"`
	ReadCacheExpiry int    `gluamapper:"read_cache_expiry" hcl:"read_cache_expiry" yaml:"read_cache_expiry"` // seconds, zero is disabled
	ForceCompact    bool   `gluamapper:"force_compact" hcl:"force_compact" yaml:"force_compact"`
}

// LoggerType - log file rotation and levels
type LoggerType struct {
	Directory string      `gluamapper:"directory" hcl:"directory" yaml:"directory"`
	File      string      `gluamapper:"file" hcl:"file" yaml:"file"`
	Size      int         `gluamapper:"size" hcl:"size" yaml:"size"`
	Count     int         `gluamapper:"count" hcl:"count" yaml:"count"`
	Console   bool        `gluamapper:"console" hcl:"console" yaml:"console"`
	Levels    LoglevelMap `gluamapper:"levels" hcl:"levels" yaml:"levels"`
}

// Configuration - the complete configuration of a store
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" hcl:"data_directory" yaml:"data_directory"`
	Database      DatabaseType `gluamapper:"database" hcl:"database" yaml:"database"`
	Logging       LoggerType   `gluamapper:"logging" hcl:"logging" yaml:"logging"`
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		Database: DatabaseType{
			Backend:   string(storage.DefaultBackend),
			Directory: defaultDatabaseDirectory,
			CacheSize: defaultCacheSize,
			Obfuscate: true,
		},

		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: LoglevelMap{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	backend, err := storage.ParseBackend(options.Database.Backend)
	if nil != err {
		return nil, err
	}
	options.Database.Backend = string(backend)

	if options.Database.CacheSize < 0 {
		return nil, fmt.Errorf("cache_size: %d must not be negative", options.Database.CacheSize)
	}
	if options.Database.ReadCacheExpiry < 0 {
		return nil, fmt.Errorf("read_cache_expiry: %d must not be negative", options.Database.ReadCacheExpiry)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	options.Database.Directory = util.EnsureAbsolute(options.DataDirectory, options.Database.Directory)
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)

	// fallback level must always be present
	if nil == options.Logging.Levels {
		options.Logging.Levels = LoglevelMap{}
	}
	if _, ok := options.Logging.Levels[logger.DefaultTag]; !ok {
		options.Logging.Levels[logger.DefaultTag] = "critical"
	}

	return options, nil
}

// StorageParams - parameters for storage.Open
func (c *Configuration) StorageParams() storage.Params {
	return storage.Params{
		Backend:         storage.Backend(c.Database.Backend),
		Path:            c.Database.Directory,
		CacheBytes:      c.Database.CacheSize,
		Obfuscate:       c.Database.Obfuscate,
		ReadCacheExpiry: time.Duration(c.Database.ReadCacheExpiry) * time.Second,
		Options: storage.Options{
			ForceCompact: c.Database.ForceCompact,
		},
	}
}

// LoggerConfiguration - settings for logger.Initialise
//
// the log directory is created if missing
func (c *Configuration) LoggerConfiguration() (logger.Configuration, error) {
	if err := util.EnsureDirectory(c.Logging.Directory); nil != err {
		return logger.Configuration{}, err
	}
	return logger.Configuration{
		Directory: c.Logging.Directory,
		File:      c.Logging.File,
		Size:      c.Logging.Size,
		Count:     c.Logging.Count,
		Console:   c.Logging.Console,
		Levels:    c.Logging.Levels,
	}, nil
}
