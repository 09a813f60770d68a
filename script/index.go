// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"io"

	"github.com/bitmark-inc/avlindex/avl"
)

//go:generate mockgen -destination=mocks/index.go -package=mocks github.com/bitmark-inc/avlindex/script Index

// Index - the ordered index operations used by the processor,
// implemented by *avl.Tree
type Index interface {
	Insert(avl.Item) (bool, error)
	Delete(avl.Item) (avl.Item, error)
	Lookup(avl.Item) (avl.Item, error)
	Contains(avl.Item) (bool, error)
	Successor(avl.Item) (avl.Item, bool, error)
	Deepest() (avl.Item, bool)
	Height() int
	Count() int
	Clear()
	Items() []avl.Item
	Check() error
	Print(io.Writer, bool) int
}
