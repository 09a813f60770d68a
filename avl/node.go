// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// a.Compare(b) returns -1, 0, +1 for a < b, a == b, a > b
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left    *Node // left sub-tree
	right   *Node // right sub-tree
	key     Item  // key part for ordering
	height  int   // 0 for a leaf
	balance int   // height(left) - height(right): -1, 0, +1
}

// allocate a new leaf node
func newNode(key Item) *Node {
	return &Node{
		key:     key,
		height:  0,
		balance: 0,
	}
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// Height - cached height of the sub-tree rooted at this node,
// a nil node has height -1
func (p *Node) Height() int {
	if nil == p {
		return -1
	}
	return p.height
}

// Balance - cached balance factor of a node
func (p *Node) Balance() int {
	return p.balance
}
