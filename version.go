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

// Version is a QR code symbol version, a number in the range [1, 40].
// The side length of the resulting square symbol is 17 + 4*version modules.
type Version uint8

// MinVersion and MaxVersion bound the range of QR code versions supported by
// ISO/IEC 18004.
const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

// newVersion validates and returns a Version, or an error if v is outside
// [MinVersion, MaxVersion].
func newVersion(v int) (Version, error) {
	if v < int(MinVersion) || v > int(MaxVersion) {
		return 0, &InvalidVersionError{Version: v}
	}

	return Version(v), nil
}

// size returns the side length, in modules, of a symbol of this version.
func (v Version) size() int {
	return int(v)*4 + 17
}

// getAlignmentPatternPositions returns the ascending list of row/column
// centers at which alignment patterns are drawn for this version. Each
// position is in the range [0, size), used on both axes; entries that fall
// inside a finder pattern's footprint are skipped by the caller, not here.
func (v Version) getAlignmentPatternPositions() []byte {
	if v == MinVersion {
		return []byte{}
	}

	numAlign := int(v)/7 + 2
	var step int
	if v == 32 { // Special snowflake: the formula below doesn't hold at v=32.
		step = 26
	} else { // step = ceil[(size - 13) / (numAlign*2 - 2)] * 2.
		step = (int(v)*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}

	result := make([]byte, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, int(v)*4+17-7; i >= 1; i-- {
		result[i] = byte(pos)
		pos -= step
	}

	return result
}
