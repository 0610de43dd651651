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
	"reflect"
)

// Encode serializes a value to RLP. Scalars are normalized first (see
// Normalize for the accepted types); slices other than byte slices encode
// as lists, with each element encoded recursively. Value trees from Decode
// or NewString/NewList re-encode to their canonical form. Structurally
// equal inputs always produce byte-identical output.
func Encode(v any) ([]byte, error) {
	if val, ok := v.(*Value); ok {
		return encodeValue(val)
	}
	if val, ok := v.(Value); ok {
		return encodeValue(&val)
	}
	if isListInput(v) {
		rv := reflect.ValueOf(v)
		var payload []byte
		for i := 0; i < rv.Len(); i++ {
			enc, err := Encode(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			payload = append(payload, enc...)
		}
		return append(EncodeHeader(uint64(len(payload)), ListOffset), payload...), nil
	}
	data, err := Normalize(v)
	if err != nil {
		return nil, err
	}
	return encodeString(data), nil
}

func encodeValue(v *Value) ([]byte, error) {
	if v == nil {
		return encodeString(nil), nil
	}
	// Decoded values carry their canonical encoding already
	if enc := v.Rlp(); enc != nil {
		ret := make([]byte, len(enc))
		copy(ret, enc)
		return ret, nil
	}
	if v.Kind() == KindString {
		return encodeString(v.Bytes()), nil
	}
	var payload []byte
	for _, item := range v.List() {
		enc, err := encodeValue(item)
		if err != nil {
			return nil, err
		}
		payload = append(payload, enc...)
	}
	return append(EncodeHeader(uint64(len(payload)), ListOffset), payload...), nil
}

// encodeString applies the self-encoding rule: a lone byte below
// StringOffset is its own encoding and takes no header
func encodeString(data []byte) []byte {
	if len(data) == 1 && data[0] < StringOffset {
		return []byte{data[0]}
	}
	return append(EncodeHeader(uint64(len(data)), StringOffset), data...)
}

// isListInput reports whether v encodes as a list. Byte slices are
// strings, every other slice kind is a list.
func isListInput(v any) bool {
	if v == nil {
		return false
	}
	rt := reflect.TypeOf(v)
	return rt.Kind() == reflect.Slice && rt.Elem().Kind() != reflect.Uint8
}

// EncodeToHex encodes a value and returns the 0x-prefixed hex form
func EncodeToHex(v any) (string, error) {
	enc, err := Encode(v)
	if err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(enc), nil
}

// AppendUint appends the encoding of an unsigned integer to buf. It is
// equivalent to appending Encode(v) but avoids the intermediate
// allocations on hot paths.
func AppendUint(buf []byte, v uint64) []byte {
	switch {
	case v == 0:
		return append(buf, StringOffset)
	case v < uint64(StringOffset):
		return append(buf, byte(v))
	default:
		data := minimalUintBytes(v)
		buf = append(buf, StringOffset+byte(len(data)))
		return append(buf, data...)
	}
}

// AppendString appends the encoding of a byte string to buf
func AppendString(buf, data []byte) []byte {
	if len(data) == 1 && data[0] < StringOffset {
		return append(buf, data[0])
	}
	buf = append(buf, EncodeHeader(uint64(len(data)), StringOffset)...)
	return append(buf, data...)
}
