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

import (
	"math"
	"regexp"
	"strconv"
)

// QRSegment represents a single segment in a QR code. This implementation
// always builds exactly one segment per encode call (numeric, alphanumeric,
// or byte), selected by determineMode.
type QRSegment struct {
	Mode              // The mode of this segment.
	NumChars int       // The length of this segment's unencoded data.
	Data     bitBuffer // The encoded data for this segment.
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)

	// alphanumericValue maps a byte to its position in alphanumericCharset,
	// or -1 if it doesn't belong to the charset. Built once so MakeAlphanumeric
	// doesn't re-scan the 45-character charset for every character it encodes.
	alphanumericValue = newAlphanumericValueTable()
)

func newAlphanumericValueTable() [256]int16 {
	var table [256]int16
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(alphanumericCharset); i++ {
		table[alphanumericCharset[i]] = int16(i)
	}
	return table
}

// numericGroupBits[n] is the bit width of a group of n encoded digits
// (ISO/IEC 18004 table 3): 4 bits for a lone trailing digit, 7 for a pair,
// 10 for a full triple.
var numericGroupBits = [4]int8{0, 4, 7, 10}

// determineMode chooses the most compact mode that can represent data: an
// empty or all-digit string is Numeric; failing that, a string drawn from
// the 45-character alphanumeric alphabet is Alphanumeric; anything else
// falls back to Byte.
func determineMode(data []byte) Mode {
	text := string(data)
	if numericRegexp.MatchString(text) {
		return Numeric
	}
	if alphanumericRegexp.MatchString(text) {
		return Alphanumeric
	}
	return Byte
}

// segmentBitLength returns the encoded length in bits of seg at version
// (mode indicator + character count field + data), or ok=false if the
// character count overflows the field width for this version.
func segmentBitLength(seg *QRSegment, version Version) (length int, ok bool) {
	ccBits := seg.Mode.numCharCountBits(version)
	if seg.NumChars >= 1<<ccBits {
		return 0, false
	}
	return 4 + int(ccBits) + len(seg.Data), true
}

// getTotalBits sums segmentBitLength across segs, returning -1 if any
// segment doesn't fit its character-count field or the running total would
// overflow a 32-bit codeword count.
func getTotalBits(segs []*QRSegment, version Version) int {
	total := int64(0)
	for _, seg := range segs {
		length, ok := segmentBitLength(seg, version)
		if !ok {
			return -1
		}
		total += int64(length)
		if total > math.MaxInt32 {
			return -1
		}
	}
	return int(total)
}

// MakeAlphanumeric creates an alphanumeric segment from the given text
// (uppercase letters, digits, some symbols).
func MakeAlphanumeric(text string) *QRSegment {
	if !alphanumericRegexp.MatchString(text) {
		panic("string contains non-alphanumeric characters")
	}

	bb := make(bitBuffer, 0, len(text)*5+(len(text)+1)/2)
	i := 0
	for ; i+1 < len(text); i += 2 { // Process pairs of characters.
		pair := int(alphanumericValue[text[i]])*45 + int(alphanumericValue[text[i+1]])
		bb.appendBits(pair, 11)
	}
	if i < len(text) { // One character left over.
		bb.appendBits(int(alphanumericValue[text[i]]), 6)
	}

	return &QRSegment{
		Mode:     Alphanumeric,
		NumChars: len(text),
		Data:     bb,
	}
}

// MakeBytes encodes a byte slice into a QR segment of type Byte.
func MakeBytes(data []byte) *QRSegment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}

	return &QRSegment{
		Mode:     Byte,
		NumChars: len(data),
		Data:     bb,
	}
}

// MakeNumeric creates a numeric segment from the given digit string.
func MakeNumeric(digits string) *QRSegment {
	if !numericRegexp.MatchString(digits) {
		panic("string contains non-numeric characters")
	}

	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		end := i + 3
		if end > len(digits) {
			end = len(digits)
		}
		group := digits[i:end]
		value, _ := strconv.Atoi(group) // Safe: numericRegexp already confirmed digits-only.
		bb.appendBits(value, numericGroupBits[len(group)])
		i = end
	}

	return &QRSegment{
		Mode:     Numeric,
		NumChars: len(digits),
		Data:     bb,
	}
}

// MakeSegments encodes data into a single QR segment, auto-selecting the
// most efficient supported mode (numeric, alphanumeric, or byte) per
// determineMode. An empty input still yields a (zero-length) segment, since
// an empty-data QR symbol is a well-defined encoding, not a no-op.
func MakeSegments(data []byte) []*QRSegment {
	switch determineMode(data) {
	case Numeric:
		return []*QRSegment{MakeNumeric(string(data))}
	case Alphanumeric:
		return []*QRSegment{MakeAlphanumeric(string(data))}
	default:
		return []*QRSegment{MakeBytes(data)}
	}
}
