// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/fault"
)

// ParseFunc - convert a command argument to a key
type ParseFunc func(string) (avl.Item, error)

// StringKey - keys ordered by byte-wise string comparison
type StringKey string

// Compare - string key comparison for AVL interface
func (s StringKey) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringKey)))
}

func (s StringKey) String() string {
	return string(s)
}

// IntegerKey - keys ordered numerically
type IntegerKey int64

// Compare - integer key comparison for AVL interface
func (i IntegerKey) Compare(x interface{}) int {
	j := x.(IntegerKey)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	}
	return 0
}

func (i IntegerKey) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// ParseString - any text is a valid string key
func ParseString(s string) (avl.Item, error) {
	return StringKey(s), nil
}

// ParseInteger - decimal signed 64 bit integer key
func ParseInteger(s string) (avl.Item, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return nil, fault.ErrInvalidKey
	}
	return IntegerKey(n), nil
}

// ParserFor - select a parser by key type name
func ParserFor(keyType string) (ParseFunc, error) {
	switch strings.ToLower(keyType) {
	case "string":
		return ParseString, nil
	case "integer":
		return ParseInteger, nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// ParseList - convert a list of values to keys
func ParseList(parse ParseFunc, values []string) ([]avl.Item, error) {
	items := make([]avl.Item, 0, len(values))
	for _, v := range values {
		key, err := parse(v)
		if nil != err {
			return nil, err
		}
		items = append(items, key)
	}
	return items, nil
}
