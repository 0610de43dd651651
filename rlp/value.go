// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rlp

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// Kind distinguishes the two RLP value kinds
type Kind uint8

const (
	KindString Kind = iota
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Value is a decoded RLP item: either a byte string or an ordered list of
// nested values. Values are immutable once built. Decoded values retain
// their original encoding, which Rlp returns without re-encoding.
type Value struct {
	kind Kind
	str  []byte
	list []*Value
	// Kept as a string so the retained encoding cannot be mutated
	// through a shared slice
	rlpData string
}

// NewString builds a byte string value
func NewString(data []byte) *Value {
	return &Value{
		kind: KindString,
		str:  data,
	}
}

// NewList builds a list value from the given items
func NewList(items ...*Value) *Value {
	return &Value{
		kind: KindList,
		list: items,
	}
}

// Kind returns the value kind
func (v *Value) Kind() Kind {
	return v.kind
}

// Bytes returns the payload of a byte string value, or nil for a list
func (v *Value) Bytes() []byte {
	if v.kind != KindString {
		return nil
	}
	return v.str
}

// List returns the child values of a list, or nil for a byte string
func (v *Value) List() []*Value {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// Rlp returns the original encoding for a decoded value. For values built
// with NewString/NewList it returns nil; use Encode instead.
func (v *Value) Rlp() []byte {
	if v.rlpData == "" {
		return nil
	}
	return []byte(v.rlpData)
}

// Interface converts the value tree into plain Go types: []byte for byte
// strings and []any for lists, recursively.
func (v *Value) Interface() any {
	if v.kind == KindString {
		return v.str
	}
	items := make([]any, 0, len(v.list))
	for _, item := range v.list {
		items = append(items, item.Interface())
	}
	return items
}

// Uint64 reads a byte string value as a canonical big-endian unsigned
// integer. Leading zero bytes are rejected, matching the encode-side rule
// that integers use their minimal form.
func (v *Value) Uint64() (uint64, error) {
	if v.kind != KindString {
		return 0, ErrExpectedString
	}
	if len(v.str) > 8 {
		return 0, ErrUintOverflow
	}
	if len(v.str) > 0 && v.str[0] == 0x00 {
		return 0, ErrNonCanonicalInteger
	}
	var ret uint64
	for _, b := range v.str {
		ret = ret<<8 | uint64(b)
	}
	return ret, nil
}

// BigInt reads a byte string value as a canonical big-endian unsigned
// big integer
func (v *Value) BigInt() (*big.Int, error) {
	if v.kind != KindString {
		return nil, ErrExpectedString
	}
	if len(v.str) > 0 && v.str[0] == 0x00 {
		return nil, ErrNonCanonicalInteger
	}
	return new(big.Int).SetBytes(v.str), nil
}

// Uint256 reads a byte string value as a canonical big-endian unsigned
// 256-bit integer
func (v *Value) Uint256() (*uint256.Int, error) {
	if v.kind != KindString {
		return nil, ErrExpectedString
	}
	if len(v.str) > 32 {
		return nil, ErrUintOverflow
	}
	if len(v.str) > 0 && v.str[0] == 0x00 {
		return nil, ErrNonCanonicalInteger
	}
	return new(uint256.Int).SetBytes(v.str), nil
}

// String renders byte strings as hex and lists in bracketed form
func (v *Value) String() string {
	if v.kind == KindString {
		return hex.EncodeToString(v.str)
	}
	parts := make([]string, 0, len(v.list))
	for _, item := range v.list {
		parts = append(parts, item.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
