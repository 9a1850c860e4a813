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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

package qrencode

// The two tables below are transcribed directly from ISO/IEC 18004 Table 9
// (error correction characteristics); every other per-version table in this
// package is computed at init time (from these two tables or from closed-form
// formulas) rather than hand-transcribed, to keep exactly one place where a
// transcription error could hide.
var (
	// eccCodeWordsPerBlock[ecc][version] is the number of error-correction
	// codewords in each block (spec's "r"). Index 0 is padding, never used.
	eccCodeWordsPerBlock = [4][41]int{
		//       0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
	}

	// numErrorCorrectionBlocks[ecc][version] is the total block count (spec's
	// "BlockCount").
	numErrorCorrectionBlocks = [4][41]int{
		//       0, 1, 2, 3, 4, 5, 6, 7, 8, 9,10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
	}
)

// Derived per-version tables, populated by init below.
var (
	alignmentPatternPositions [41][]byte
	numDataCodewords          [4][41]int
	numRawDataModules         [41]int
	reedSolomonDivisors       = make(map[int][]byte)
)

func init() {
	initNumRawDataModules()
	initNumDataCodewords()
	initReedSolomonDivisors()
	initAlignmentPatternPositions()
}

// initNumRawDataModules fills numRawDataModules[v]: the number of
// data-bearing modules available at version v after all function modules
// are excluded (includes remainder bits, so it may not be a multiple of 8).
func initNumRawDataModules() {
	for v := 1; v <= 40; v++ {
		modules := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			modules -= (25*numAlign-10)*numAlign - 55 // Subtract alignment patterns.
			if v >= 7 {
				modules -= 36 // Subtract version information.
			}
		}
		if modules < 208 || modules > 29648 {
			panic("numRawDataModules miscalculated")
		}
		numRawDataModules[v] = modules
	}
}

// initNumDataCodewords fills numDataCodewords[ecc][v]: the data (non-ECC)
// codeword count, with remainder bits discarded.
func initNumDataCodewords() {
	for e := Low; e <= High; e++ {
		for v := 1; v <= 40; v++ {
			numDataCodewords[e][v] = numRawDataModules[v]/8 - eccCodeWordsPerBlock[e][v]*numErrorCorrectionBlocks[e][v]
		}
	}
}

// initReedSolomonDivisors precomputes the Reed-Solomon generator polynomial
// for every distinct ECC block length that appears in eccCodeWordsPerBlock,
// so encoding never pays for generator construction.
func initReedSolomonDivisors() {
	for e := 0; e < 4; e++ {
		for v := 1; v <= 40; v++ {
			reedSolomonDivisor(eccCodeWordsPerBlock[e][v])
		}
	}
}

// initAlignmentPatternPositions caches every version's alignment centers.
func initAlignmentPatternPositions() {
	for v := 1; v <= 40; v++ {
		alignmentPatternPositions[v] = Version(v).getAlignmentPatternPositions()
	}
}
