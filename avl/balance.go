// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// recompute the cached fields from the children, which must already
// be correct
func update(p *Node) {
	lh := p.left.Height()
	rh := p.right.Height()
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
	p.balance = lh - rh
}

// restore the balance at p and return the new sub-tree root
func rebalance(p *Node) *Node {
	update(p)

	switch {
	case p.balance < -1: // right heavy
		if p.right.balance > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)

	case p.balance > 1: // left heavy
		if p.left.balance < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	}
	return p
}

// right child becomes the sub-tree root
func rotateLeft(p *Node) *Node {
	pivot := p.right
	p.right = pivot.left
	pivot.left = p

	// p is now below pivot so must be updated first
	update(p)
	update(pivot)
	return pivot
}

// left child becomes the sub-tree root
func rotateRight(p *Node) *Node {
	pivot := p.left
	p.left = pivot.right
	pivot.right = p

	update(p)
	update(pivot)
	return pivot
}
