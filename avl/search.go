// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// Contains - true if an item equal to key is in the tree
func (tree *Tree) Contains(key Item) (bool, error) {
	if nil == key {
		return false, fault.ErrNilItem
	}
	return nil != search(key, tree.root), nil
}

// Lookup - find the stored item equal to key
func (tree *Tree) Lookup(key Item) (Item, error) {
	if nil == key {
		return nil, fault.ErrNilItem
	}
	p := search(key, tree.root)
	if nil == p {
		return nil, fault.ErrItemNotFound
	}
	return p.key, nil
}

func search(key Item, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	switch c := tree.key.Compare(key); {
	case c > 0: // tree.key > key
		return search(key, tree.left)
	case c < 0: // tree.key < key
		return search(key, tree.right)
	default:
		return tree
	}
}

// Deepest - the item of the deepest node, the highest such item if
// several nodes share the maximum depth
//
// returns false for an empty tree
func (tree *Tree) Deepest() (Item, bool) {
	p := tree.root
	if nil == p {
		return nil, false
	}
	// the balance factor always points at a deepest leaf, preferring
	// the right branch when both sides are of equal height
	for p.height > 0 {
		if p.balance > 0 {
			p = p.left
		} else {
			p = p.right
		}
	}
	return p.key, true
}

// Successor - the lowest item strictly greater than key
//
// key must be in the tree; returns false if key is the highest item
func (tree *Tree) Successor(key Item) (Item, bool, error) {
	if nil == key {
		return nil, false, fault.ErrNilItem
	}
	p, err := successor(key, tree.root)
	if nil != err {
		return nil, false, err
	}
	if nil == p {
		return nil, false, nil
	}
	return p.key, true, nil
}

// internal: returns nil, nil if key is present but has no successor
// within this sub-tree
func successor(key Item, p *Node) (*Node, error) {
	if nil == p {
		return nil, fault.ErrItemNotFound
	}

	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		s, err := successor(key, p.left)
		if nil != err {
			return nil, err
		}
		if nil != s {
			return s, nil
		}
		// key is the highest item of the left sub-tree
		return p, nil

	case c < 0: // p.key < key
		return successor(key, p.right)

	default:
		return p.right.first(), nil
	}
}
