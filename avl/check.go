// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// Check - verify ordering, cached heights, balance factors and the
// item count
func (tree *Tree) Check() error {
	_, n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, all keys of p must be strictly
// between low and high (nil means unbounded); returns the height and
// node count of the sub-tree
func check(p *Node, low Item, high Item) (int, int, error) {
	if nil == p {
		return -1, 0, nil
	}
	if nil != low && p.key.Compare(low) <= 0 {
		return 0, 0, fault.ErrOrderViolation
	}
	if nil != high && p.key.Compare(high) >= 0 {
		return 0, 0, fault.ErrOrderViolation
	}

	lh, ln, err := check(p.left, low, p.key)
	if nil != err {
		return 0, 0, err
	}
	rh, rn, err := check(p.right, p.key, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		return 0, 0, fault.ErrHeightMismatch
	}
	b := lh - rh
	if b != p.balance || b < -1 || b > 1 {
		return 0, 0, fault.ErrBalanceOutOfRange
	}
	return h, 1 + ln + rn, nil
}
