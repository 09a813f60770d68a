// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/configuration"
	"github.com/bitmark-inc/avlindex/script"
)

const (
	logDirectory = "testing"
	logFileName  = "test.log"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(logDirectory)
	_ = os.Mkdir(logDirectory, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      logFileName,
		Size:      50000,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	rc := m.Run()
	logger.Finalise()
	_ = os.RemoveAll(logDirectory)
	os.Exit(rc)
}

// the sample configuration and script must stay usable
func TestSampleFiles(t *testing.T) {
	theConfiguration, err := configuration.GetConfiguration("avlindex.conf.sample")
	if nil != err {
		t.Fatalf("sample configuration error: %s", err)
	}
	defer os.RemoveAll(theConfiguration.Logging.Directory)

	parse, err := script.ParserFor(theConfiguration.KeyType)
	assert.Nil(t, err, "key type")

	items, err := script.ParseList(parse, theConfiguration.Items)
	assert.Nil(t, err, "items")

	tree, err := avl.NewFromList(items)
	assert.Nil(t, err, "load")
	assert.Equal(t, 8, tree.Count(), "count")

	out := &bytes.Buffer{}
	processor := script.New(tree, parse, out, logger.New("script"))

	failed, err := runScripts(processor, []string{"example.script"})
	assert.Nil(t, err, "run error")
	assert.Equal(t, 0, failed, "failed commands: %s", out.String())
	assert.Equal(t, 7, tree.Count(), "count after script")
}

func TestRunScripts(t *testing.T) {
	dir, err := ioutil.TempDir("", "avlindex-scripts")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	first := filepath.Join(dir, "first.script")
	second := filepath.Join(dir, "second.script")
	_ = ioutil.WriteFile(first, []byte("insert a b c\nlookup z\n"), 0600)
	_ = ioutil.WriteFile(second, []byte("delete b\nsuccessor a\n"), 0600)

	tree := avl.New()
	out := &bytes.Buffer{}
	processor := script.New(tree, script.ParseString, out, logger.New("script"))

	failed, err := runScripts(processor, []string{first, second})
	assert.Nil(t, err, "run error")
	assert.Equal(t, 1, failed, "failed commands")
	assert.Equal(t, []avl.Item{script.StringKey("a"), script.StringKey("c")}, tree.Items(), "items")
	assert.Contains(t, out.String(), "successor: a → c", "output")

	_, err = runScripts(processor, []string{filepath.Join(dir, "missing.script")})
	assert.NotNil(t, err, "missing file accepted")
}
