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

// Package render rasterizes a qrencode.QRCode into an image (PNG) or a
// scalable vector (SVG), each bordered by the quiet zone the symbol
// requires.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/qrencode/qrencode"
)

// DefaultBorder is the quiet zone width, in modules, recommended by
// ISO/IEC 18004.
const DefaultBorder = 4

// PNG writes qr to w as a paletted (2-color) PNG, scale pixels per module,
// surrounded by border modules of quiet zone on each side.
func PNG(w io.Writer, qr *qrencode.QRCode, scale, border int) error {
	if scale < 1 {
		scale = 1
	}
	if border < 0 {
		return fmt.Errorf("render: border must be non-negative, got %d", border)
	}

	dim := (qr.Size + 2*border) * scale
	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{
		color.White,
		color.Black,
	})
	for i := range img.Pix {
		img.Pix[i] = 0 // Index 0 is white.
	}

	for r := 0; r < qr.Size; r++ {
		for c := 0; c < qr.Size; c++ {
			if qr.Modules[r][c] == 0 {
				continue
			}
			startX := (c + border) * scale
			startY := (r + border) * scale
			for y := 0; y < scale; y++ {
				for x := 0; x < scale; x++ {
					img.SetColorIndex(startX+x, startY+y, 1) // Index 1 is black.
				}
			}
		}
	}

	return png.Encode(w, img)
}

// SVG returns a scalable vector graphics document for qr, surrounded by
// border modules of quiet zone. When includeDocType is true, an XML
// declaration and DOCTYPE precede the <svg> element.
func SVG(qr *qrencode.QRCode, border int, includeDocType bool) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("render: border must be non-negative, got %d", border)
	}

	var sb strings.Builder
	if includeDocType {
		sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	}
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", qr.Size+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	for y := 0; y < qr.Size; y++ {
		for x := 0; x < qr.Size; x++ {
			if qr.Modules[y][x] == 0 {
				continue
			}
			if x != 0 && y != 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
