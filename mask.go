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

import "math"

// This file applies the eight ISO/IEC 18004 mask patterns and scores the
// result with the four-term penalty described in spec.md section 4.7:
// run length, finder-like run-history patterns, 2x2 same-color blocks, and
// dark/light balance. The mask predicates below are the standard closed-form
// formulas; spec.md notes these are interchangeable with the XOR-tile
// formulation as long as every cell's result matches.

// Penalty weights used by getPenaltyScore to judge how scanner-friendly a
// given mask choice is.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// maskInvert reports whether mask inverts the module at (x, y),
// per the eight standard ISO/IEC 18004 predicates.
func maskInvert(mask Mask, x, y int) bool {
	switch mask {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("illegal mask value")
	}
}

// applyMask XORs the non-function modules of this QR code with the given
// mask. Applying the same mask twice undoes it.
func (q *QRCode) applyMask(mask Mask) {
	for y := 0; y < q.Size; y++ {
		for x := 0; x < q.Size; x++ {
			invert := maskInvert(mask, x, y) && !q.IsFunction[y][x]
			q.Modules[y][x] ^= module(bToI(invert))
		}
	}
}

// finderPenaltyAddHistory pushes currentRunLength to the front of the run
// history, dropping the oldest entry.
func (q *QRCode) finderPenaltyAddHistory(currentRunLength int, runHistory *[7]int) {
	if runHistory[0] == 0 {
		currentRunLength += q.Size // Count the initial light border as part of the run.
	}
	copy(runHistory[1:], runHistory[0:])
	runHistory[0] = currentRunLength
}

// finderPenaltyCountPatterns counts how many of the two finder-like
// (1:1:3:1:1 ratio) patterns the current run history matches.
func (q *QRCode) finderPenaltyCountPatterns(runHistory *[7]int) int {
	n := runHistory[1]
	if n > q.Size*3 {
		panic("bad run history")
	}
	core := n > 0 && runHistory[2] == n && runHistory[3] == n*3 && runHistory[4] == n && runHistory[5] == n
	return bToI(core && runHistory[0] >= n*4 && runHistory[6] >= n) + bToI(core && runHistory[6] >= n*4 && runHistory[0] >= n)
}

// finderPenaltyTerminateAndCount closes out a row or column's run history at
// its end and returns the finder-like pattern penalty count.
func (q *QRCode) finderPenaltyTerminateAndCount(runColor module, runLength int, runHistory *[7]int) int {
	if runColor == 1 {
		q.finderPenaltyAddHistory(runLength, runHistory)
		runLength = 0
	}
	runLength += q.Size // Count the final light border.
	q.finderPenaltyAddHistory(runLength, runHistory)
	return q.finderPenaltyCountPatterns(runHistory)
}

// lineRunPenalty scans one row or column (whichever at(i) reads) and adds
// both the consecutive-run penalty (terms N1) and the finder-like pattern
// penalty (term N3) for that single line. Sharing this scan between the row
// pass and the column pass of getPenaltyScore avoids keeping two near-copies
// of the same loop around.
func (q *QRCode) lineRunPenalty(at func(i int) module) int {
	result := 0
	runColor := module(0)
	runLength := 0
	var runHistory [7]int

	for i := 0; i < q.Size; i++ {
		if at(i) == runColor {
			runLength++
			switch {
			case runLength == 5:
				result += penaltyN1
			case runLength > 5:
				result++
			}
			continue
		}
		q.finderPenaltyAddHistory(runLength, &runHistory)
		if runColor == 0 {
			result += q.finderPenaltyCountPatterns(&runHistory) * penaltyN3
		}
		runColor = at(i)
		runLength = 1
	}
	result += q.finderPenaltyTerminateAndCount(runColor, runLength, &runHistory) * penaltyN3

	return result
}

// runPenalty sums lineRunPenalty across every row, then every column.
func (q *QRCode) runPenalty() int {
	result := 0
	for y := 0; y < q.Size; y++ {
		y := y
		result += q.lineRunPenalty(func(x int) module { return q.Modules[y][x] })
	}
	for x := 0; x < q.Size; x++ {
		x := x
		result += q.lineRunPenalty(func(y int) module { return q.Modules[y][x] })
	}
	return result
}

// blockPenalty adds term N2: one penaltyN2 for every 2x2 block of a single
// color.
func (q *QRCode) blockPenalty() int {
	result := 0
	for y := 0; y < q.Size-1; y++ {
		for x := 0; x < q.Size-1; x++ {
			color := q.Modules[y][x]
			if color == q.Modules[y][x+1] && color == q.Modules[y+1][x] && color == q.Modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}
	return result
}

// balancePenalty adds term N4: a penalty proportional to how far the dark
// module proportion strays from 50%.
func (q *QRCode) balancePenalty() int {
	black := 0
	for _, row := range q.Modules {
		for _, color := range row {
			if color == 1 {
				black++
			}
		}
	}
	total := q.Size * q.Size // Size is always odd, so black/total never equals exactly 1/2.
	k := (abs(black*20-total*10)+total-1)/total - 1
	return k * penaltyN4
}

// getPenaltyScore computes the four-term ISO/IEC 18004 penalty score for
// this symbol's current module values. Lower is better.
func (q *QRCode) getPenaltyScore() int {
	return q.runPenalty() + q.blockPenalty() + q.balancePenalty()
}

// handleConstructorMasking applies mask (or, if mask is autoMask, the one
// that minimizes getPenaltyScore) and returns the mask actually applied.
func (q *QRCode) handleConstructorMasking(mask Mask) Mask {
	if mask == autoMask {
		minPenalty := math.MaxInt32
		for i := Mask(0); i < 8; i++ {
			q.applyMask(i)
			q.drawFormatBits(i)
			penalty := q.getPenaltyScore()
			if penalty < minPenalty {
				mask = i
				minPenalty = penalty
			}
			q.applyMask(i) // Undo: XOR is its own inverse.
		}
	}

	if mask < 0 || 7 < mask {
		panic("illegal mask value")
	}

	q.applyMask(mask)
	q.drawFormatBits(mask)
	return mask
}
