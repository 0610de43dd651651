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

// Package rlp implements Recursive Length Prefix encoding and decoding.
//
// RLP serializes arbitrarily nested structures of byte strings and lists
// into a flat byte stream. Encoding is canonical: every value has exactly
// one valid encoding, and Decode rejects non-canonical alternatives such
// as a self-encodable byte wrapped in a length prefix or a length field
// with leading zero bytes.
//
// Encode accepts heterogeneous scalar inputs (byte slices, UTF-8 strings,
// 0x-prefixed hex strings, unsigned integers, big.Int, uint256.Int, nil)
// and normalizes each to its canonical byte string form before encoding.
// Non-byte slices encode as lists.
//
// Decode produces a Value tree and requires the input to hold exactly one
// item. DecodeStream and StreamDecoder handle streams of concatenated
// top-level items. Length probes the size of the first item without
// materializing it.
//
// The package is stateless and safe for concurrent use.
package rlp
