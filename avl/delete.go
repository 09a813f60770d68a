// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// Delete - removes a specific item from the tree
//
// returns the item that was stored in the tree, which compares equal
// to key but need not be the same value
func (tree *Tree) Delete(key Item) (Item, error) {
	if nil == key {
		return nil, fault.ErrNilItem
	}
	root, removed, err := remove(key, tree.root)
	if nil != err {
		return nil, err
	}
	tree.root = root
	tree.count -= 1
	return removed, nil
}

// internal delete routine, returns the new sub-tree root and the
// removed item
//
// on error nothing below p has been modified
func remove(key Item, p *Node) (*Node, Item, error) {
	if nil == p { // key not in tree
		return nil, nil, fault.ErrItemNotFound
	}

	removed := Item(nil)
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		left, item, err := remove(key, p.left)
		if nil != err {
			return p, nil, err
		}
		p.left = left
		removed = item

	case c < 0: // p.key < key
		right, item, err := remove(key, p.right)
		if nil != err {
			return p, nil, err
		}
		p.right = right
		removed = item

	default: // found: delete p
		removed = p.key
		if nil == p.left {
			return p.right, removed, nil
		}
		if nil == p.right {
			return p.left, removed, nil
		}

		// two children: take over the predecessor's item
		p.left, p.key = removePredecessor(p.left)
	}
	return rebalance(p), removed, nil
}

// splice out the highest node of a sub-tree, returns the new sub-tree
// root and the item of the removed node
func removePredecessor(p *Node) (*Node, Item) {
	if nil == p.right {
		return p.left, p.key
	}
	right, item := removePredecessor(p.right)
	p.right = right
	return rebalance(p), item
}
