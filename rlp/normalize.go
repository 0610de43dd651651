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

	"github.com/holiman/uint256"
)

// Normalize converts a supported input scalar into its canonical byte
// string form:
//
//   - byte slices pass through unchanged
//   - strings with a 0x/0X prefix are hex-decoded, left-padded with a zero
//     nibble when the digit count is odd
//   - any other string is taken as raw UTF-8 bytes
//   - unsigned and non-negative signed integers become their minimal
//     big-endian form, with zero mapping to the empty string
//   - big.Int and uint256.Int values use the same minimal big-endian rule
//   - nil maps to the empty string
//
// Negative integers and any other type return ErrInvalidInputType.
func Normalize(v any) ([]byte, error) {
	switch s := v.(type) {
	case nil:
		return []byte{}, nil
	case []byte:
		return s, nil
	case string:
		if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
			return decodeHexNibbles(s[2:])
		}
		return []byte(s), nil
	case uint:
		return minimalUintBytes(uint64(s)), nil
	case uint8:
		return minimalUintBytes(uint64(s)), nil
	case uint16:
		return minimalUintBytes(uint64(s)), nil
	case uint32:
		return minimalUintBytes(uint64(s)), nil
	case uint64:
		return minimalUintBytes(s), nil
	case int:
		return normalizeSigned(int64(s))
	case int8:
		return normalizeSigned(int64(s))
	case int16:
		return normalizeSigned(int64(s))
	case int32:
		return normalizeSigned(int64(s))
	case int64:
		return normalizeSigned(s)
	case *big.Int:
		return normalizeBigInt(s)
	case big.Int:
		return normalizeBigInt(&s)
	case *uint256.Int:
		if s == nil {
			return []byte{}, nil
		}
		return s.Bytes(), nil
	case uint256.Int:
		return s.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidInputType, v)
	}
}

func normalizeSigned(v int64) ([]byte, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: negative integer %d", ErrInvalidInputType, v)
	}
	return minimalUintBytes(uint64(v)), nil
}

// normalizeBigInt trusts the big.Int's own minimal representation; the
// Bytes method never produces leading zero bytes.
func normalizeBigInt(v *big.Int) ([]byte, error) {
	if v == nil {
		return []byte{}, nil
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative big integer", ErrInvalidInputType)
	}
	return v.Bytes(), nil
}

func decodeHexNibbles(h string) ([]byte, error) {
	if len(h)%2 != 0 {
		h = "0" + h
	}
	decoded, err := hex.DecodeString(h)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hex string: %s", ErrInvalidInputType, err)
	}
	return decoded, nil
}
