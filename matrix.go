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

// This file builds the module matrix: the function patterns (timing,
// finder, alignment, format/version placeholders) and the zig-zag codeword
// placement pass described in spec.md section 4.6.

// drawFunctionPatterns draws every function (non-data) module: timing
// patterns, the three finder patterns, alignment patterns, and the
// format/version information areas.
func (q *QRCode) drawFunctionPatterns() {
	for i := 0; i < q.Size; i++ {
		q.setFunctionModule(6, i, i%2 == 0)
		q.setFunctionModule(i, 6, i%2 == 0)
	}

	q.drawFinderPattern(3, 3)
	q.drawFinderPattern(q.Size-4, 3)
	q.drawFinderPattern(3, q.Size-4)

	q.drawAlignmentPatterns()

	q.drawFormatBits(0) // Placeholder; overwritten once the real mask is chosen.
	q.drawVersion()
}

// drawAlignmentPatterns draws every alignment pattern for this version,
// skipping the three positions that would overlap a finder pattern.
func (q *QRCode) drawAlignmentPatterns() {
	positions := alignmentPatternPositions[q.Version]
	last := len(positions) - 1
	for i, px := range positions {
		for j, py := range positions {
			atFinderCorner := (i == 0 && j == 0) || (i == 0 && j == last) || (i == last && j == 0)
			if !atFinderCorner {
				q.drawAlignmentPattern(int(px), int(py))
			}
		}
	}
}

// chebyshevDistance is the Chebyshev (chessboard) distance from the origin,
// the metric that makes finder and alignment patterns concentric squares.
func chebyshevDistance(dx, dy int) int {
	return max(abs(dx), abs(dy))
}

// drawFinderPattern draws a 9x9 finder pattern (including its separator)
// centered at (x, y).
func (q *QRCode) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= q.Size || yy < 0 || yy >= q.Size {
				continue
			}
			dist := chebyshevDistance(dx, dy)
			q.setFunctionModule(xx, yy, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (x, y).
func (q *QRCode) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			q.setFunctionModule(x+dx, y+dy, chebyshevDistance(dx, dy) != 1)
		}
	}
}

// point is a single matrix coordinate (column, row).
type point struct{ x, y int }

// codewordPlacementOrder returns the data-area coordinates in the
// boustrophedon (zig-zag) column scan order that drawCodewords fills them
// in: right to left in two-column strips, alternating top-to-bottom and
// bottom-to-top, skipping the vertical timing column at x == 6.
func codewordPlacementOrder(size int) []point {
	order := make([]point, 0, size*size)
	for right := size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5 // Skip the vertical timing column.
		}
		upward := (right+1)&2 == 0
		for vert := 0; vert < size; vert++ {
			row := vert
			if upward {
				row = size - 1 - vert
			}
			order = append(order, point{x: right, y: row}, point{x: right - 1, y: row})
		}
	}
	return order
}

// drawCodewords draws the given codeword sequence (data then ECC) onto the
// data area by walking codewordPlacementOrder, skipping function modules
// and any leftover remainder bits.
func (q *QRCode) drawCodewords(data []byte) {
	if len(data) != numRawDataModules[q.Version]/8 {
		panic("incorrect data length")
	}

	totalBits := len(data) * 8
	bitIndex := 0
	for _, p := range codewordPlacementOrder(q.Size) {
		if q.IsFunction[p.y][p.x] || bitIndex >= totalBits {
			continue
		}
		q.Modules[p.y][p.x] = module(getBit(int(data[bitIndex>>3]), 7-(bitIndex&7)))
		bitIndex++
	}

	if bitIndex != totalBits {
		panic("incorrect length")
	}
}

func (q *QRCode) setFunctionModule(x, y int, isBlack bool) {
	q.Modules[y][x] = bToModule(isBlack)
	q.IsFunction[y][x] = true
}
