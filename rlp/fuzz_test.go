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

package rlp_test

import (
	"bytes"
	"testing"

	"github.com/blinklabs-io/gorlp/rlp"
)

func FuzzDecode(f *testing.F) {
	// Seed corpus with valid RLP samples
	f.Add([]byte{})                       // empty input
	f.Add([]byte{0x00})                   // byte 0x00
	f.Add([]byte{0x7f})                   // byte 0x7f
	f.Add([]byte{0x80})                   // empty string
	f.Add([]byte{0x81, 0x80})             // single byte 0x80
	f.Add([]byte{0x83, 0x64, 0x6f, 0x67}) // "dog"
	f.Add([]byte{0xc0})                   // empty list
	f.Add([]byte{0xc1, 0xc0})             // nested empty list
	f.Add(
		[]byte{0xc8, 0x83, 0x64, 0x6f, 0x67, 0x83, 0x63, 0x61, 0x74},
	) // ["dog", "cat"]
	f.Add([]byte{0xb8, 0x38})       // truncated long string
	f.Add([]byte{0xb9, 0x00, 0x01}) // leading zero length
	f.Add([]byte{0xf8, 0x3c})       // truncated long list

	f.Fuzz(func(t *testing.T, data []byte) {
		value, err := rlp.Decode(data)
		if err != nil {
			// Malformed input just needs to fail cleanly
			return
		}
		// Anything that decodes must re-encode to the exact input
		reEncoded, err := rlp.Encode(value)
		if err != nil {
			t.Fatalf("failed to re-encode decoded value: %s", err)
		}
		if len(data) == 0 {
			// Empty input decodes to the empty string, whose canonical
			// encoding is a single 0x80 byte
			if !bytes.Equal(reEncoded, []byte{0x80}) {
				t.Fatalf("unexpected re-encoding of empty input: %x", reEncoded)
			}
			return
		}
		if !bytes.Equal(reEncoded, data) {
			t.Fatalf(
				"re-encoding was not byte-identical\n  got: %x\n  wanted: %x",
				reEncoded,
				data,
			)
		}
	})
}

func FuzzNormalize(f *testing.F) {
	f.Add("dog")
	f.Add("0x0400")
	f.Add("0x400")
	f.Add("0X")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		data, err := rlp.Normalize(input)
		if err != nil {
			return
		}
		// Normalized output must be encodable
		if _, err := rlp.Encode(data); err != nil {
			t.Fatalf("failed to encode normalized bytes: %s", err)
		}
	})
}
