// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlindex/configuration"
	"github.com/bitmark-inc/avlindex/fault"
)

const testConfiguration = `
local M = {}

M.data_directory = "."
M.key_type = "Integer"
M.colour = true
M.items = { "50", "30", "70" }

M.logging = {
    size = 4096,
    count = 3,
    levels = {
        DEFAULT = "warn",
        script = "debug",
    },
}

return M
`

func writeFile(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, err := ioutil.TempDir("", "avlindex-configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "test.conf", testConfiguration)

	options, err := configuration.GetConfiguration(fileName)
	if nil != err {
		t.Fatalf("get configuration error: %s", err)
	}

	expectedDir, _ := filepath.Abs(dir)
	assert.Equal(t, filepath.Clean(expectedDir), options.DataDirectory, "data directory")
	assert.Equal(t, "integer", options.KeyType, "key type not lower case")
	assert.True(t, options.Colour, "colour")
	assert.Equal(t, []string{"50", "30", "70"}, options.Items, "items")
	assert.Equal(t, 4096, options.Logging.Size, "log size")
	assert.Equal(t, 3, options.Logging.Count, "log count")
	assert.Equal(t, "avlindex.log", options.Logging.File, "default log file")
	assert.Equal(t, "debug", options.Logging.Levels["script"], "script level")
	assert.Equal(t, filepath.Join(options.DataDirectory, "log"), options.Logging.Directory, "log directory")

	info, err := os.Stat(options.Logging.Directory)
	assert.Nil(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log directory is not a directory")

	lc := options.LoggerConfiguration()
	assert.Equal(t, options.Logging.Directory, lc.Directory, "logger directory")
	assert.Equal(t, 4096, lc.Size, "logger size")
}

func TestLogFileMustBePlain(t *testing.T) {
	dir, err := ioutil.TempDir("", "avlindex-configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "bad.conf", `return { logging = { file = "sub/x.log" } }`)

	_, err = configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "log file path accepted")
}

func TestParseErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "avlindex-configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "number.conf", `return 42`)

	var options struct {
		KeyType string `gluamapper:"key_type"`
	}

	err = configuration.ParseConfigurationFile(fileName, options)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-pointer accepted")

	err = configuration.ParseConfigurationFile(fileName, &options)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "non-table accepted")

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "missing.conf"), &options)
	assert.NotNil(t, err, "missing file accepted")

	syntax := writeFile(t, dir, "syntax.conf", `return {`)
	err = configuration.ParseConfigurationFile(syntax, &options)
	assert.NotNil(t, err, "syntax error accepted")
}

func TestConfigurationArgument(t *testing.T) {
	dir, err := ioutil.TempDir("", "avlindex-configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "arg.conf", `return { key_type = arg[0] }`)

	var options struct {
		KeyType string `gluamapper:"key_type"`
	}
	err = configuration.ParseConfigurationFile(fileName, &options)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, fileName, options.KeyType, "arg[0] is not the file name")
}
