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

import "errors"

var (
	// ErrInvalidInputType is returned when an input scalar is not one of
	// the supported types (byte slice, string, unsigned integer, big
	// integer, uint256, nil, or a slice of supported values)
	ErrInvalidInputType = errors.New("rlp: invalid input type")

	// ErrInvalidLengthEncoding is returned when a length field read from
	// the wire starts with a zero byte, which would make the encoding
	// non-minimal
	ErrInvalidLengthEncoding = errors.New(
		"rlp: non-canonical length encoding (leading zero bytes)",
	)

	// ErrNonCanonicalSingleByte is returned when a string of declared
	// length 1 wraps a byte below 0x80, which should have been encoded
	// as the byte itself
	ErrNonCanonicalSingleByte = errors.New(
		"rlp: single byte below 0x80 must be self-encoded",
	)

	// ErrTruncatedPayload is returned when a short-form header declares
	// more payload bytes than remain in the input
	ErrTruncatedPayload = errors.New("rlp: declared length exceeds remaining input")

	// ErrOversizedLength is returned when a long-form header declares a
	// total size larger than the available input
	ErrOversizedLength = errors.New("rlp: declared total length exceeds input size")

	// ErrEmptyLongList is returned when a long-list header yields an
	// empty payload region
	ErrEmptyLongList = errors.New("rlp: long list header with empty payload")

	// ErrTrailingData is returned by Decode when bytes remain after the
	// single top-level item
	ErrTrailingData = errors.New("rlp: input contains trailing bytes after value")

	// ErrNestingTooDeep is returned when decoding exceeds the list
	// nesting limit
	ErrNestingTooDeep = errors.New("rlp: maximum list nesting depth exceeded")

	// ErrExpectedString is returned by Value accessors that require a
	// byte string when the value is a list
	ErrExpectedString = errors.New("rlp: expected string value, got list")

	// ErrNonCanonicalInteger is returned when reading an integer from a
	// decoded string that has leading zero bytes
	ErrNonCanonicalInteger = errors.New(
		"rlp: non-canonical integer (leading zero bytes)",
	)

	// ErrUintOverflow is returned when a decoded integer does not fit
	// the requested integer type
	ErrUintOverflow = errors.New("rlp: integer value too large for target type")
)
