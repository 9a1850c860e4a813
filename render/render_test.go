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

package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrencode/qrencode"
)

func TestPNG(t *testing.T) {
	qr, err := qrencode.Encode([]byte("RENDER TEST"), qrencode.Medium)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, qr, 4, DefaultBorder))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	wantDim := (qr.Size + 2*DefaultBorder) * 4
	assert.Equal(t, wantDim, img.Bounds().Dx())
	assert.Equal(t, wantDim, img.Bounds().Dy())
}

func TestPNGRejectsNegativeBorder(t *testing.T) {
	qr, err := qrencode.Encode([]byte("X"), qrencode.Low)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = PNG(&buf, qr, 1, -1)
	require.Error(t, err)
}

func TestSVG(t *testing.T) {
	qr, err := qrencode.Encode([]byte("RENDER TEST"), qrencode.Medium)
	require.NoError(t, err)

	svg, err := SVG(qr, DefaultBorder, false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.Contains(svg, "<path d=\""))
}

func TestSVGWithDocType(t *testing.T) {
	qr, err := qrencode.Encode([]byte("X"), qrencode.Low)
	require.NoError(t, err)

	svg, err := SVG(qr, 4, true)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(svg, "<?xml"))
}

func TestSVGRejectsNegativeBorder(t *testing.T) {
	qr, err := qrencode.Encode([]byte("X"), qrencode.Low)
	require.NoError(t, err)

	_, err = SVG(qr, -1, false)
	require.Error(t, err)
}
