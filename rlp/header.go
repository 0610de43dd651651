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

import "encoding/binary"

const (
	// StringOffset is the header base for byte strings
	StringOffset byte = 0x80
	// ListOffset is the header base for lists
	ListOffset byte = 0xc0

	// ShortLengthLimit is the largest payload length that fits in a
	// single-byte header
	ShortLengthLimit = 56
)

// EncodeHeader returns the RLP header bytes for a payload of the given
// length. The base is StringOffset for byte strings and ListOffset for
// lists. Payloads below ShortLengthLimit get a single header byte; larger
// payloads get a length-of-length byte followed by the minimal big-endian
// length bytes.
func EncodeHeader(payloadLen uint64, base byte) []byte {
	if payloadLen < ShortLengthLimit {
		return []byte{base + byte(payloadLen)}
	}
	lenBytes := minimalUintBytes(payloadLen)
	header := make([]byte, 0, 1+len(lenBytes))
	header = append(header, base+ShortLengthLimit-1+byte(len(lenBytes)))
	return append(header, lenBytes...)
}

// minimalUintBytes returns the big-endian form of v with all leading zero
// bytes removed. Zero maps to an empty slice.
func minimalUintBytes(v uint64) []byte {
	if v == 0 {
		return []byte{}
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	i := 0
	for buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// parseDeclaredLength reads a big-endian length field from the wire. A
// leading zero byte means the field could have been encoded shorter, so it
// is rejected as non-canonical.
func parseDeclaredLength(lenBytes []byte) (uint64, error) {
	if len(lenBytes) == 0 || lenBytes[0] == 0x00 {
		return 0, ErrInvalidLengthEncoding
	}
	if len(lenBytes) > 8 {
		return 0, ErrUintOverflow
	}
	var length uint64
	for _, b := range lenBytes {
		length = length<<8 | uint64(b)
	}
	return length, nil
}

// Length reports the total encoded size (header plus declared payload) of
// the first RLP item in the input without materializing any children. The
// input passes through the same coercion as Decode, so hex strings work.
// Empty or nil input reports zero. Length agrees with the decoder's header
// interpretation for every input, including the canonical-form checks on
// length fields.
func Length(input any) (uint64, error) {
	buf, err := Normalize(input)
	if err != nil {
		return 0, err
	}
	if len(buf) == 0 {
		return 0, nil
	}
	first := buf[0]
	switch {
	case first <= 0x7f:
		// Self-encoded single byte
		return 1, nil
	case first <= 0xb7:
		return 1 + uint64(first-StringOffset), nil
	case first <= 0xbf:
		lenOfLen := int(first - 0xb7)
		if len(buf) < 1+lenOfLen {
			return 0, ErrTruncatedPayload
		}
		length, err := parseDeclaredLength(buf[1 : 1+lenOfLen])
		if err != nil {
			return 0, err
		}
		return 1 + uint64(lenOfLen) + length, nil
	case first <= 0xf7:
		return 1 + uint64(first-ListOffset), nil
	default:
		lenOfLen := int(first - 0xf7)
		if len(buf) < 1+lenOfLen {
			return 0, ErrTruncatedPayload
		}
		length, err := parseDeclaredLength(buf[1 : 1+lenOfLen])
		if err != nil {
			return 0, err
		}
		return 1 + uint64(lenOfLen) + length, nil
	}
}
