// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/fault"
	"github.com/bitmark-inc/avlindex/script"
)

const testScript = `
# build the example tree
insert 50 30 70 20 40 60 80 10
count
delete 50
size
successor 40
successor 80
deepest
height
lookup 99
contains 30
insert 30
check
list

bogus
lookup
insert x
clear
deepest
height
`

const expectedOutput = `inserted: 50
inserted: 30
inserted: 70
inserted: 20
inserted: 40
inserted: 60
inserted: 80
inserted: 10
count: 8
deleted: 50
count: 7
successor: 40 → 60
successor: 80 → none
deepest: 80
height: 2
error: lookup: item not found
contains: 30 true
duplicate: 30
check: ok
list: 10 20 30 40 60 70 80
error: bogus: unknown command
error: lookup: wrong number of arguments
error: insert: invalid key
cleared
deepest: none
height: -1
`

func TestRunScript(t *testing.T) {
	tree := avl.New()
	out := &bytes.Buffer{}
	p := script.New(tree, script.ParseInteger, out, logger.New(category))

	failed, err := p.Run(strings.NewReader(testScript))
	assert.Nil(t, err, "run error")
	assert.Equal(t, 4, failed, "failed commands")
	assert.Equal(t, expectedOutput, out.String(), "output")
	assert.True(t, tree.IsEmpty(), "tree not cleared")
}

func TestExecuteErrors(t *testing.T) {
	tree := avl.New()
	out := &bytes.Buffer{}
	p := script.New(tree, script.ParseString, out, logger.New(category))

	assert.Nil(t, p.Execute(""), "blank line")
	assert.Nil(t, p.Execute("   # comment"), "comment")
	assert.Equal(t, "", out.String(), "output for blank and comment")

	assert.Equal(t, fault.ErrItemNotFound, p.Execute("delete a"), "delete")
	assert.Equal(t, fault.ErrItemNotFound, p.Execute("successor a"), "successor")
	assert.Equal(t, fault.ErrArgumentCount, p.Execute("height 1"), "too many arguments")
	assert.Equal(t, fault.ErrUnknownCommand, p.Execute("drop a"), "unknown")
	assert.Equal(t, 0, tree.Count(), "count")
}

func TestExecuteCaseAndStrings(t *testing.T) {
	tree := avl.New()
	out := &bytes.Buffer{}
	p := script.New(tree, script.ParseString, out, logger.New(category))

	assert.Nil(t, p.Execute("INSERT b a c"), "insert")
	assert.Nil(t, p.Execute("Remove b"), "remove alias")
	assert.Nil(t, p.Execute("list"), "list")
	assert.Nil(t, p.Execute("print"), "print")

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "deleted: b", lines[3], "remove output")
	assert.Equal(t, "list: a c", lines[4], "list output")
	assert.True(t, strings.Contains(out.String(), "|------+ "), "print output")
}

func TestColourOutput(t *testing.T) {
	tree := avl.New()
	out := &bytes.Buffer{}
	p := script.New(tree, script.ParseString, out, logger.New(category))

	_ = p.Execute("check")
	assert.Equal(t, "check: ok\n", out.String(), "colour is off by default")

	out.Reset()
	p.SetColour(true)
	_ = p.Execute("check")
	assert.True(t, strings.HasPrefix(out.String(), "\x1b["), "no colour escape: %q", out.String())
	assert.True(t, strings.Contains(out.String(), "check: ok"), "text")
}
