/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrencode

// Mode represents the encoding mode (numeric, alphanumeric, or byte) of a
// segment. Kanji and ECI are not supported.
type Mode struct {
	modeBits int8
	numBits  [3]int8
}

// Mode values for a segment.
var (
	Numeric      = Mode{0x1, [3]int8{10, 12, 14}}
	Alphanumeric = Mode{0x2, [3]int8{9, 11, 13}}
	Byte         = Mode{0x4, [3]int8{8, 16, 16}}
)

// numCharCountBits returns the bit width of the character-count field for
// this mode at the given version: versions 1-9, 10-26, and 27-40 each use a
// progressively wider field.
func (m *Mode) numCharCountBits(version Version) int8 {
	return m.numBits[(version+7)/17]
}
