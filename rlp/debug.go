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
	"bytes"
	"fmt"
)

// DumpStructure generates an indented string representing a decoded value
// tree for debugging purposes
func DumpStructure(v *Value, prefix string) string {
	if v == nil {
		return prefix + "<nil>,\n"
	}
	if v.Kind() == KindString {
		data := v.Bytes()
		if len(data) == 0 {
			return prefix + "<empty string>,\n"
		}
		return fmt.Sprintf("%s0x%x (length %d),\n", prefix, data, len(data))
	}
	var ret bytes.Buffer
	ret.WriteString(prefix + "[\n")
	for _, item := range v.List() {
		ret.WriteString(DumpStructure(item, prefix+"  "))
	}
	ret.WriteString(prefix + "],\n")
	return ret.String()
}
