// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the lowest item, false if the tree is empty
func (tree *Tree) First() (Item, bool) {
	p := tree.root.first()
	if nil == p {
		return nil, false
	}
	return p.key, true
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the highest item, false if the tree is empty
func (tree *Tree) Last() (Item, bool) {
	p := tree.root.last()
	if nil == p {
		return nil, false
	}
	return p.key, true
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Walk - call f for each item in ascending order until f returns false
//
// the tree must not be modified from inside f
func (tree *Tree) Walk(f func(Item) bool) {
	walk(tree.root, f)
}

func walk(p *Node, f func(Item) bool) bool {
	if nil == p {
		return true
	}
	return walk(p.left, f) && f(p.key) && walk(p.right, f)
}

// Items - all items in ascending order
func (tree *Tree) Items() []Item {
	items := make([]Item, 0, tree.count)
	tree.Walk(func(key Item) bool {
		items = append(items, key)
		return true
	})
	return items
}

// ItemsAtDepth - returns all items at a specific depth of the tree,
// lowest first; the root is at depth zero
func (tree *Tree) ItemsAtDepth(depth int) []Item {
	items := []Item{}
	if depth < 0 {
		return items
	}
	return itemsAtDepth(tree.root, depth, items)
}

func itemsAtDepth(p *Node, depth int, items []Item) []Item {
	if nil == p {
		return items
	}
	if 0 == depth {
		return append(items, p.key)
	}
	items = itemsAtDepth(p.left, depth-1, items)
	return itemsAtDepth(p.right, depth-1, items)
}
