// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// Insert - insert a new item into the tree
//
// returns true if the item was added, false if it was already present
func (tree *Tree) Insert(key Item) (bool, error) {
	if nil == key {
		return false, fault.ErrNilItem
	}
	added := false
	tree.root, added = insert(key, tree.root, &tree.count)
	return added, nil
}

// internal routine for insert, returns the new sub-tree root
func insert(key Item, p *Node, count *int) (*Node, bool) {
	if nil == p { // insert new node
		*count += 1
		return newNode(key), true
	}

	added := false
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, added = insert(key, p.left, count)
	case c < 0: // p.key < key
		p.right, added = insert(key, p.right, count)
	default:
		// already present
	}
	return rebalance(p), added
}
