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

// Package qrencode builds ISO/IEC 18004 QR Code symbols: mode selection,
// bit-stream assembly, Reed-Solomon error correction, matrix construction,
// and mask selection. See matrix.go, mask.go, and format.go for the module
// matrix builder, the masking/scoring pass, and format/version information.
package qrencode

// module is the value of one cell of the symbol matrix: 0 (light) or 1
// (dark). During construction, IsFunction records separately whether a cell
// is a function (metadata) module, so masking can skip it.
type module int8

// Mask identifies one of the eight ISO/IEC 18004 mask patterns, or autoMask
// for automatic selection by penalty score.
type Mask int8

// autoMask requests automatic mask selection; it is the default.
const autoMask Mask = -1

// QRCode represents a QR code symbol: a square matrix of light/dark modules
// plus the metadata that produced it.
type QRCode struct {
	Version                  // The QR code version, a number in [1, 40].
	Size                 int // The width and height of the symbol in modules.
	ErrorCorrectionLevel ECC // The error correction level used in this symbol.
	Mask                     // The mask pattern [0, 7] applied to this symbol.
	Modules              [][]module
	IsFunction           [][]bool
}

// Option configures an Encode call.
type Option func(*encodeOptions)

type encodeOptions struct {
	boostECL bool
	mask     Mask
	version  Version // 0 means "auto-select".
}

// WithVersion pins the symbol to a specific version instead of
// auto-selecting the smallest one that fits the data.
func WithVersion(v Version) Option {
	return func(o *encodeOptions) { o.version = v }
}

// WithMask pins the mask pattern instead of selecting automatically by
// penalty score.
func WithMask(m Mask) Option {
	return func(o *encodeOptions) { o.mask = m }
}

// WithBoostECL, when true, raises the error correction level beyond the one
// requested if the chosen version still has room to spare. Defaults to
// false, so Encode's default behavior matches the requested ECC level
// exactly.
func WithBoostECL(boost bool) Option {
	return func(o *encodeOptions) { o.boostECL = boost }
}

// EncodeBinary encodes data as a single Byte-mode segment, bypassing
// automatic mode selection.
func EncodeBinary(data []byte, ecl ECC, opts ...Option) (*QRCode, error) {
	return EncodeSegments([]*QRSegment{MakeBytes(data)}, ecl, opts...)
}

// EncodeText is an alias of Encode for callers that prefer a string
// argument.
func EncodeText(text string, ecl ECC, opts ...Option) (*QRCode, error) {
	return Encode([]byte(text), ecl, opts...)
}

// Encode encodes data into a QR code symbol at the given error correction
// level, auto-selecting the mode (numeric, alphanumeric, or byte) and,
// unless WithVersion is given, the smallest version that fits.
func Encode(data []byte, ecl ECC, opts ...Option) (*QRCode, error) {
	return EncodeSegments(MakeSegments(data), ecl, opts...)
}

// resolveOptions applies opts over the encoder defaults and validates the
// mask bound; version/ECC-level validation happens later, once the data
// length is known.
func resolveOptions(opts []Option) encodeOptions {
	o := encodeOptions{
		boostECL: false,
		mask:     autoMask,
		version:  0,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.mask < autoMask || o.mask > 7 {
		panic("mask value out of range")
	}
	return o
}

// chooseVersion finds the smallest version in [minV, maxV] whose data
// capacity, at ecl, fits the segments' encoded bit length.
func chooseVersion(segs []*QRSegment, ecl ECC, minV, maxV Version, forced bool) (Version, int, error) {
	version := minV
	for {
		dataCapacityBits := numDataCodewords[ecl][version] * 8
		dataUsedBits := getTotalBits(segs, version)
		if dataUsedBits != -1 && dataUsedBits <= dataCapacityBits {
			return version, dataUsedBits, nil
		}
		if version >= maxV {
			return 0, 0, &CapacityExceededError{
				Version:   version,
				DataBits:  dataUsedBits,
				Capacity:  dataCapacityBits,
				WasForced: forced,
			}
		}
		version++
	}
}

// boostedECL raises ecl as far as Medium..High while the data still fits
// numDataCodewords at the chosen version, when requested.
func boostedECL(ecl ECC, dataUsedBits int, version Version, boost bool) ECC {
	if !boost {
		return ecl
	}
	for newEcl := Medium; newEcl <= High; newEcl++ {
		if dataUsedBits <= numDataCodewords[newEcl][version]*8 {
			ecl = newEcl
		}
	}
	return ecl
}

// assembleDataCodewords concatenates the segments' mode/count/data bits,
// appends the terminator, byte-alignment padding, and alternating pad
// codewords, and packs the result into bytes.
func assembleDataCodewords(segs []*QRSegment, version Version, dataUsedBits, dataCapacityBits int) []byte {
	bb := make(bitBuffer, 0, dataUsedBits/8+1)
	for _, seg := range segs {
		bb.appendBits(int(seg.modeBits), 4)
		bb.appendBits(seg.NumChars, seg.Mode.numCharCountBits(version))
		bb = append(bb, seg.Data...)
	}
	if len(bb) != dataUsedBits {
		panic("incorrect data size calculation")
	}
	if len(bb) > dataCapacityBits {
		panic("incorrect data size calculation")
	}

	bb.appendBits(0, int8(min(4, dataCapacityBits-len(bb))))
	bb.appendBits(0, int8((8-len(bb)%8)%8))
	if len(bb)%8 != 0 {
		panic("incorrect data size calculation")
	}
	for padByte := 0xEC; len(bb) < dataCapacityBits; padByte ^= 0xEC ^ 0x11 {
		bb.appendBits(padByte, 8)
	}

	return bb.packBytes()
}

// EncodeSegments builds a QR code symbol from one or more pre-built
// segments.
func EncodeSegments(segs []*QRSegment, ecl ECC, opts ...Option) (*QRCode, error) {
	o := resolveOptions(opts)

	forced := o.version != 0
	minV, maxV := MinVersion, MaxVersion
	if forced {
		if o.version < MinVersion || o.version > MaxVersion {
			return nil, &InvalidVersionError{Version: int(o.version)}
		}
		minV, maxV = o.version, o.version
	}

	version, dataUsedBits, err := chooseVersion(segs, ecl, minV, maxV, forced)
	if err != nil {
		return nil, err
	}
	ecl = boostedECL(ecl, dataUsedBits, version, o.boostECL)

	dataCapacityBits := numDataCodewords[ecl][version] * 8
	dataCodewords := assembleDataCodewords(segs, version, dataUsedBits, dataCapacityBits)

	size := version.size()
	qrCode := QRCode{
		Version:              version,
		Size:                 size,
		ErrorCorrectionLevel: ecl,
		Modules:              make([][]module, size),
		IsFunction:           make([][]bool, size),
	}
	for i := 0; i < size; i++ {
		qrCode.Modules[i] = make([]module, size)
		qrCode.IsFunction[i] = make([]bool, size)
	}

	qrCode.drawFunctionPatterns()
	allCodewords := qrCode.addECCAndInterleave(dataCodewords)
	qrCode.drawCodewords(allCodewords)
	qrCode.Mask = qrCode.handleConstructorMasking(o.mask)

	qrCode.IsFunction = nil

	return &qrCode, nil
}

// addECCAndInterleave splits data into blocks (per numErrorCorrectionBlocks),
// computes each block's ECC codewords, and interleaves data then ECC bytes
// across blocks into the final raw codeword sequence.
func (q *QRCode) addECCAndInterleave(data []byte) []byte {
	if len(data) != numDataCodewords[q.ErrorCorrectionLevel][q.Version] {
		panic("data is not correct length")
	}

	numBlocks := numErrorCorrectionBlocks[q.ErrorCorrectionLevel][q.Version]
	blockECCLen := eccCodeWordsPerBlock[q.ErrorCorrectionLevel][q.Version]
	rawCodewords := numRawDataModules[q.Version] / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks

	blocks := make([]rsBlock, numBlocks)
	for i, k := 0, 0; i < numBlocks; i++ {
		dataLen := shortBlockLen - blockECCLen + bToI(i >= numShortBlocks)
		blocks[i] = makeBlock(data[k:k+dataLen], blockECCLen)
		k += dataLen
	}

	result := make([]byte, rawCodewords)
	k := 0
	for i := 0; i < len(blocks[len(blocks)-1].data); i++ {
		for j := 0; j < len(blocks); j++ {
			if i != shortBlockLen-blockECCLen || j >= numShortBlocks {
				result[k] = blocks[j].data[i]
				k++
			}
		}
	}
	for i := 0; i < blockECCLen; i++ {
		for j := 0; j < len(blocks); j++ {
			result[k] = blocks[j].ecc[i]
			k++
		}
	}

	return result
}
