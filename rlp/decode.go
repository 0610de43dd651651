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

import "io"

// DefaultMaxDepth bounds list nesting during decode. The format itself
// places no limit, but recursion depth tracks nesting depth, so
// adversarial input could otherwise exhaust the stack.
const DefaultMaxDepth = 1024

// Decode parses a single RLP item from the input. The input passes
// through the same coercion as Normalize, so a 0x-prefixed hex string
// works as well as a byte slice. An empty input decodes to an empty byte
// string. Any bytes left over after the item make the whole decode fail
// with ErrTrailingData; use DecodeStream or StreamDecoder for
// concatenated items.
func Decode(input any) (*Value, error) {
	return DecodeWithLimit(input, DefaultMaxDepth)
}

// DecodeWithLimit is Decode with a caller-chosen nesting limit
func DecodeWithLimit(input any, maxDepth int) (*Value, error) {
	buf, err := Normalize(input)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return NewString([]byte{}), nil
	}
	v, remainder, err := decodeItem(buf, 0, maxDepth)
	if err != nil {
		return nil, err
	}
	if len(remainder) > 0 {
		return nil, ErrTrailingData
	}
	return v, nil
}

// DecodeStream parses the first RLP item from the input and returns it
// along with the unconsumed remainder. Repeated calls against the
// remainder walk a stream of concatenated top-level items.
func DecodeStream(input any) (*Value, []byte, error) {
	buf, err := Normalize(input)
	if err != nil {
		return nil, nil, err
	}
	if len(buf) == 0 {
		return NewString([]byte{}), nil, nil
	}
	return decodeItem(buf, 0, DefaultMaxDepth)
}

// decodeItem is the single decode step. It classifies the first byte into
// one of the five header ranges, extracts one item, and returns the item
// plus the remainder of the outer buffer. List payloads recurse through
// the same function against the shrinking inner slice.
func decodeItem(data []byte, depth, maxDepth int) (*Value, []byte, error) {
	if depth > maxDepth {
		return nil, nil, ErrNestingTooDeep
	}
	first := data[0]
	switch {
	case first <= 0x7f:
		// Single self-encoded byte
		v := &Value{
			kind:    KindString,
			str:     data[0:1],
			rlpData: string(data[0:1]),
		}
		return v, data[1:], nil
	case first <= 0xb7:
		// Short string
		length := int(first - StringOffset)
		if length > len(data)-1 {
			return nil, nil, ErrTruncatedPayload
		}
		payload := data[1 : 1+length]
		if length == 1 && payload[0] < StringOffset {
			return nil, nil, ErrNonCanonicalSingleByte
		}
		v := &Value{
			kind:    KindString,
			str:     payload,
			rlpData: string(data[:1+length]),
		}
		return v, data[1+length:], nil
	case first <= 0xbf:
		// Long string
		lenOfLen := int(first - 0xb7)
		if len(data) < 1+lenOfLen {
			return nil, nil, ErrTruncatedPayload
		}
		length, err := parseDeclaredLength(data[1 : 1+lenOfLen])
		if err != nil {
			return nil, nil, err
		}
		if length > uint64(len(data)-1-lenOfLen) {
			return nil, nil, ErrOversizedLength
		}
		total := 1 + lenOfLen + int(length)
		v := &Value{
			kind:    KindString,
			str:     data[1+lenOfLen : total],
			rlpData: string(data[:total]),
		}
		return v, data[total:], nil
	case first <= 0xf7:
		// Short list
		length := int(first - ListOffset)
		if length > len(data)-1 {
			return nil, nil, ErrTruncatedPayload
		}
		items, err := decodeListPayload(data[1:1+length], depth, maxDepth)
		if err != nil {
			return nil, nil, err
		}
		v := &Value{
			kind:    KindList,
			list:    items,
			rlpData: string(data[:1+length]),
		}
		return v, data[1+length:], nil
	default:
		// Long list
		lenOfLen := int(first - 0xf7)
		if len(data) < 1+lenOfLen {
			return nil, nil, ErrTruncatedPayload
		}
		length, err := parseDeclaredLength(data[1 : 1+lenOfLen])
		if err != nil {
			return nil, nil, err
		}
		if length > uint64(len(data)-1-lenOfLen) {
			return nil, nil, ErrOversizedLength
		}
		total := 1 + lenOfLen + int(length)
		payload := data[1+lenOfLen : total]
		if len(payload) == 0 {
			return nil, nil, ErrEmptyLongList
		}
		items, err := decodeListPayload(payload, depth, maxDepth)
		if err != nil {
			return nil, nil, err
		}
		v := &Value{
			kind:    KindList,
			list:    items,
			rlpData: string(data[:total]),
		}
		return v, data[total:], nil
	}
}

// decodeListPayload decodes items from a list's inner slice until it is
// exhausted
func decodeListPayload(inner []byte, depth, maxDepth int) ([]*Value, error) {
	items := []*Value{}
	for len(inner) > 0 {
		item, rest, err := decodeItem(inner, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		inner = rest
	}
	return items, nil
}

// StreamDecoder provides sequential decoding of concatenated top-level
// RLP items with position tracking
type StreamDecoder struct {
	data []byte
	pos  int
}

// NewStreamDecoder creates a decoder over the given input, which passes
// through the same coercion as Decode
func NewStreamDecoder(input any) (*StreamDecoder, error) {
	buf, err := Normalize(input)
	if err != nil {
		return nil, err
	}
	return &StreamDecoder{
		data: buf,
	}, nil
}

// Next decodes and returns the next item in the stream. It returns io.EOF
// once the input is exhausted.
func (d *StreamDecoder) Next() (*Value, error) {
	if d.EOF() {
		return nil, io.EOF
	}
	v, remainder, err := decodeItem(d.data[d.pos:], 0, DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	d.pos = len(d.data) - len(remainder)
	return v, nil
}

// Position returns the current byte offset in the stream
func (d *StreamDecoder) Position() int {
	return d.pos
}

// Remaining returns the unconsumed portion of the input
func (d *StreamDecoder) Remaining() []byte {
	return d.data[d.pos:]
}

// EOF returns true once all input has been consumed
func (d *StreamDecoder) EOF() bool {
	return d.pos >= len(d.data)
}
