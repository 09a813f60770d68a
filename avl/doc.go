// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree used as an ordered index of
// distinct items
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches its height and balance factor (height of left
// sub-tree minus height of right sub-tree, an empty sub-tree having
// height -1).  Insert and Delete are recursive and rebalance every
// node on the path back to the root.
//
// Deleting a node with two children promotes its in-order
// predecessor, i.e. the highest item of the left sub-tree.
//
// Inserting an item that is already present is not an error and
// leaves the tree unchanged.
package avl
