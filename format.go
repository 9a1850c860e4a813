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

// This file draws the format and version information described in spec.md
// section 4.8: both are a short payload followed by a BCH error-correction
// remainder, computed by the same style of polynomial division over GF(2),
// just against different generator polynomials and degrees.

// bchRemainder computes the degree-bit BCH remainder of data against the
// given generator polynomial, using the standard bit-serial division: shift
// a bit in, and whenever the top bit would overflow, XOR in the generator.
func bchRemainder(data, degree, generator int) int {
	rem := data
	for i := 0; i < degree; i++ {
		rem = rem<<1 ^ rem>>(degree-1)*generator
	}
	return rem
}

// drawFormatBits draws two copies of the 15-bit format information (ECC
// level + mask pattern, BCH error-corrected).
func (q *QRCode) drawFormatBits(mask Mask) {
	const formatGenerator = 0x537
	const formatXorMask = 0x5412

	data := q.ErrorCorrectionLevel.formatBits()<<3 | int(mask)
	bits := data<<10 | bchRemainder(data, 10, formatGenerator) ^ formatXorMask
	if bits>>15 != 0 {
		panic("incorrect format bits calculation")
	}

	// First copy, around the top-left finder.
	for i := 0; i <= 5; i++ {
		q.setFunctionModule(8, i, getBitAsBool(bits, i))
	}
	q.setFunctionModule(8, 7, getBitAsBool(bits, 6))
	q.setFunctionModule(8, 8, getBitAsBool(bits, 7))
	q.setFunctionModule(7, 8, getBitAsBool(bits, 8))
	for i := 9; i < 15; i++ {
		q.setFunctionModule(14-i, 8, getBitAsBool(bits, i))
	}

	// Second copy, split across the top-right and bottom-left finders.
	for i := 0; i < 8; i++ {
		q.setFunctionModule(q.Size-1-i, 8, getBitAsBool(bits, i))
	}
	for i := 8; i < 15; i++ {
		q.setFunctionModule(8, q.Size-15+i, getBitAsBool(bits, i))
	}
	q.setFunctionModule(8, q.Size-8, true) // The dark module, always set.
}

// drawVersion draws two copies of the 18-bit version information
// (BCH error-corrected), for versions 7 and up.
func (q *QRCode) drawVersion() {
	const versionGenerator = 0x1F25

	if q.Version < 7 {
		return
	}

	data := int(q.Version)
	bits := data<<12 | bchRemainder(data, 12, versionGenerator)
	if bits>>18 != 0 {
		panic("incorrect version calculation")
	}

	for i := 0; i < 18; i++ {
		bit := getBitAsBool(bits, i)
		a := q.Size - 11 + i%3
		b := i / 3
		q.setFunctionModule(a, b, bit)
		q.setFunctionModule(b, a, bit)
	}
}
