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

// ECC represents the error correction level of a QR code symbol.
type ECC int8

// ECC values, in ascending order of recovery capacity.
const (
	Low      ECC = iota // Recovers about 7% of erroneous codewords.
	Medium              // Recovers about 15% of erroneous codewords.
	Quartile            // Recovers about 25% of erroneous codewords.
	High                // Recovers about 30% of erroneous codewords.
)

// formatBits returns the 2-bit field used when building the 15-bit format
// information string: L=01, M=00, Q=11, H=10.
func (e ECC) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("unknown ECC level")
	}
}

func (e ECC) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}
