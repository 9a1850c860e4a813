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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAlphanumeric(t *testing.T) {
	cases := []struct {
		answer bool
		text   string
	}{
		{true, ""},
		{true, "0"},
		{true, "A"},
		{false, "a"},
		{true, " "},
		{true, "."},
		{true, "*"},
		{false, ","},
		{false, "|"},
		{false, "@"},
		{true, "XYZ"},
		{false, "XYZ!"},
		{true, "79068"},
		{true, "+123 ABC$"},
		{false, "\x01"},
		{false, "\x7F"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestIsAlphanumeric %v", tc), func(t *testing.T) {
			assert.Equal(t, tc.answer, alphanumericRegexp.MatchString(tc.text))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		answer bool
		text   string
	}{
		{true, ""},
		{true, "0"},
		{false, "A"},
		{false, "a"},
		{false, " "},
		{false, "."},
		{false, "*"},
		{true, "79068"},
		{false, "+123 ABC$"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestIsNumeric %v", tc), func(t *testing.T) {
			assert.Equal(t, tc.answer, numericRegexp.MatchString(tc.text))
		})
	}
}

func TestDetermineMode(t *testing.T) {
	assert.Equal(t, Numeric, determineMode([]byte("")))
	assert.Equal(t, Numeric, determineMode([]byte("0123456789")))
	assert.Equal(t, Alphanumeric, determineMode([]byte("HELLO WORLD")))
	assert.Equal(t, Byte, determineMode([]byte("Hello, World!")))
	assert.Equal(t, Byte, determineMode([]byte{0xEF, 0xBB, 0xBF}))
}

func TestMakeBytes(t *testing.T) {
	{
		seg := MakeBytes([]byte{})
		assert.Equal(t, Byte, seg.Mode)
		assert.Equal(t, 0, seg.NumChars)
		assert.Equal(t, 0, len(seg.Data))
	}
	{
		seg := MakeBytes([]byte{0x00})
		assert.Equal(t, Byte, seg.Mode)
		assert.Equal(t, 1, seg.NumChars)
		assert.Equal(t, 8, len(seg.Data))
		assert.Equal(t, bitBuffer{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, seg.Data)
	}
	{
		seg := MakeBytes([]byte{0xEF, 0xBB, 0xBF})
		assert.Equal(t, Byte, seg.Mode)
		assert.Equal(t, 3, seg.NumChars)
		assert.Equal(t, 24, len(seg.Data))
		assert.Equal(t, bitBuffer{0x1, 0x1, 0x1, 0x0, 0x1, 0x1, 0x1, 0x1, 0x1, 0x0, 0x1, 0x1, 0x1, 0x0, 0x1, 0x1, 0x1, 0x0, 0x1, 0x1, 0x1, 0x1, 0x1, 0x1}, seg.Data)
	}
}

func TestMakeNumeric(t *testing.T) {
	cases := []struct {
		text      string
		length    int
		bitLength int
		bytes     bitBuffer
	}{
		{"", 0, 0, bitBuffer{}},
		{"9", 1, 4, bitBuffer{0x1, 0x0, 0x0, 0x1}},
		{"81", 2, 7, bitBuffer{0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x1}},
		{"673", 3, 10, bitBuffer{0x1, 0x0, 0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x0, 0x1}},
		{"3141592653", 10, 34, bitBuffer{0x0, 0x1, 0x0, 0x0, 0x1, 0x1, 0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x1, 0x0, 0x0, 0x1, 0x1, 0x1,
			0x1, 0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x0, 0x1, 0x0, 0x0, 0x1, 0x0, 0x0, 0x1, 0x1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestMakeNumeric %v", tc), func(t *testing.T) {
			seg := MakeNumeric(tc.text)
			assert.Equal(t, Numeric, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bitLength, len(seg.Data))
			assert.Equal(t, tc.bytes, seg.Data)
		})
	}
}

func TestMakeAlphanumeric(t *testing.T) {
	cases := []struct {
		text      string
		length    int
		bitLength int
		bytes     bitBuffer
	}{
		{"", 0, 0, bitBuffer{}},
		{"A", 1, 6, bitBuffer{0x0, 0x0, 0x1, 0x0, 0x1, 0x0}},
		{"%:", 2, 11, bitBuffer{0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x0}},
		{"Q R", 3, 17, bitBuffer{0x1, 0x0, 0x0, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestMakeAlphanumeric %v", tc), func(t *testing.T) {
			seg := MakeAlphanumeric(tc.text)
			assert.Equal(t, Alphanumeric, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bitLength, len(seg.Data))
			assert.Equal(t, tc.bytes, seg.Data)
		})
	}
}

func TestGetTotalBits(t *testing.T) {
	{
		segs := []*QRSegment{MakeNumeric("")}
		assert.Equal(t, 4+10, getTotalBits(segs, 1))
		assert.Equal(t, 4+14, getTotalBits(segs, 40))
	}
	{
		segs := []*QRSegment{{Mode: Byte, NumChars: 3, Data: make(bitBuffer, 24)}}
		assert.Equal(t, 36, getTotalBits(segs, 2))
		assert.Equal(t, 44, getTotalBits(segs, 10))
		assert.Equal(t, 44, getTotalBits(segs, 30))
	}
	{
		segs := []*QRSegment{{Mode: Byte, NumChars: 4093, Data: make(bitBuffer, 32744)}}
		assert.Equal(t, -1, getTotalBits(segs, 1))
		assert.Equal(t, 32764, getTotalBits(segs, 10))
		assert.Equal(t, 32764, getTotalBits(segs, 27))
	}
	{
		segs := []*QRSegment{
			{Mode: Numeric, NumChars: 2047, Data: make(bitBuffer, 6824)},
			{Mode: Numeric, NumChars: 2047, Data: make(bitBuffer, 6824)},
			{Mode: Numeric, NumChars: 2047, Data: make(bitBuffer, 6824)},
			{Mode: Numeric, NumChars: 2047, Data: make(bitBuffer, 6824)},
			{Mode: Numeric, NumChars: 1617, Data: make(bitBuffer, 5390)},
		}
		assert.Equal(t, -1, getTotalBits(segs, 1))
		assert.Equal(t, 32766, getTotalBits(segs, 10))
		assert.Equal(t, 32776, getTotalBits(segs, 27))
	}
}

func TestMakeSegmentsSingleSegment(t *testing.T) {
	assert.Len(t, MakeSegments([]byte("12345")), 1)
	assert.Len(t, MakeSegments([]byte("HELLO")), 1)
	assert.Len(t, MakeSegments([]byte("hello")), 1)
	assert.Len(t, MakeSegments([]byte("")), 1) // Empty input still yields a segment.
}
