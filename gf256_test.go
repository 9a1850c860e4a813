package qrencode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGfMultiply(t *testing.T) {
	cases := [][3]byte{
		{0x00, 0x00, 0x00},
		{0x01, 0x01, 0x01},
		{0x02, 0x02, 0x04},
		{0x00, 0x6E, 0x00},
		{0xB2, 0xDD, 0xE6},
		{0x41, 0x11, 0x25},
		{0xB0, 0x1F, 0x11},
		{0x05, 0x75, 0xBC},
		{0x52, 0xB5, 0xAE},
		{0xA8, 0x20, 0xA4},
		{0x0E, 0x44, 0x9F},
		{0xD4, 0x13, 0xA0},
		{0x31, 0x10, 0x37},
		{0x6C, 0x58, 0xCB},
		{0xB6, 0x75, 0x3E},
		{0xFF, 0xFF, 0xE2},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestGfMultiply %v", tc), func(t *testing.T) {
			assert.Equal(t, tc[2], gfMultiply(tc[0], tc[1]))
			assert.Equal(t, tc[2], gfMultiply(tc[1], tc[0])) // Multiplication commutes.
		})
	}
}

func TestGfDivide(t *testing.T) {
	for x := 1; x < 256; x++ {
		for y := 1; y < 256; y++ {
			product := gfMultiply(byte(x), byte(y))
			assert.Equal(t, byte(y), gfDivide(product, byte(x)))
		}
	}

	assert.Equal(t, byte(0), gfDivide(0, 1))
	assert.Panics(t, func() { gfDivide(1, 0) })
}

func TestGfLogExpRoundTrip(t *testing.T) {
	for v := 1; v < 256; v++ {
		assert.Equal(t, byte(v), gfExpOf(gfLogOf(byte(v))))
	}
	assert.Panics(t, func() { gfLogOf(0) })
}
