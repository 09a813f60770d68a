// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - execute line oriented index commands
//
// Each line holds one command followed by its arguments separated by
// white space.  Blank lines and lines starting with '#' are ignored.
//
//   insert KEY...      add keys, duplicates are reported but not errors
//   delete KEY...      remove keys (alias: remove)
//   lookup KEY         show the stored key
//   contains KEY       true/false
//   successor KEY      next higher key or none
//   deepest            key of the deepest node
//   height             height of the tree, -1 when empty
//   count              number of keys (alias: size)
//   clear              remove all keys
//   list               all keys in ascending order
//   check              verify the tree structure
//   print              draw the tree
package script
