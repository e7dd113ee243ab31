// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file
	defaultPrompt        = "avl> "

	defaultLogDirectory = "log"
	defaultLogFile      = "avlset.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"script":          "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings shared by the command line programs
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	KeyValues     []float64            `gluamapper:"keys" json:"-"`
	Keys          []int                `gluamapper:"-" json:"keys"`
	Verify        bool                 `gluamapper:"verify" json:"verify"`
	Prompt        string               `gluamapper:"prompt" json:"prompt"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given
//
// all paths are relative to directory
func Default(directory string) *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return &Configuration{
		DataDirectory: directory,
		Keys:          nil,
		Verify:        false,
		Prompt:        defaultPrompt,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default(defaultDataDirectory)

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.Resolve(dataDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

// Resolve - make all paths absolute relative to directory and create
// the log directory
func (options *Configuration) Resolve(directory string) error {

	// Lua numbers arrive as float64
	if nil != options.KeyValues {
		keys, err := integerKeys(options.KeyValues)
		if nil != err {
			return err
		}
		options.Keys = keys
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	case ".":
		options.DataDirectory = filepath.Clean(directory)
	default:
		options.DataDirectory = util.EnsureAbsolute(directory, options.DataDirectory)
	}

	if "" == options.Prompt {
		options.Prompt = defaultPrompt
	}

	// the log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	return util.EnsureDirectory(options.Logging.Directory)
}

// Load - read fileName if given, otherwise use the defaults with all
// paths relative to directory
func Load(fileName string, directory string) (*Configuration, error) {
	if "" != fileName {
		return GetConfiguration(fileName)
	}

	options := Default(defaultDataDirectory)
	if err := options.Resolve(directory); nil != err {
		return nil, err
	}
	return options, nil
}

// every value must be a whole number that fits in an int
func integerKeys(values []float64) ([]int, error) {
	keys := make([]int, len(values))
	for i, f := range values {
		if f != math.Trunc(f) || f < float64(math.MinInt64) || f >= float64(math.MaxInt64) {
			return nil, fmt.Errorf("%w: keys[%d] = %v", fault.ErrInvalidKey, i+1, f)
		}
		k := int64(f)
		if int64(int(k)) != k {
			return nil, fmt.Errorf("%w: keys[%d] = %v", fault.ErrInvalidKey, i+1, f)
		}
		keys[i] = int(k)
	}
	return keys, nil
}
