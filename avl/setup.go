// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// NewFromList - create a tree containing the items of a list
//
// items are inserted in list order and duplicates are skipped; a nil
// list or any nil item is rejected before anything is inserted
func NewFromList(items []Item) (*Tree, error) {
	if nil == items {
		return nil, fault.ErrNilList
	}
	for _, key := range items {
		if nil == key {
			return nil, fault.ErrNilItem
		}
	}

	tree := New()
	for _, key := range items {
		tree.root, _ = insert(key, tree.root, &tree.count)
	}
	return tree, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the whole tree, -1 if empty
func (tree *Tree) Height() int {
	return tree.root.Height()
}

// Root - return the root node of the tree
//
// the node is only valid until the next Insert or Delete
func (tree *Tree) Root() *Node {
	return tree.root
}

// Clear - drop all nodes
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}
