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

// rsBlock is one block of a Reed-Solomon-interleaved codeword stream: k data
// bytes plus the r error-correction bytes computed from them.
type rsBlock struct {
	data []byte // k data codewords.
	ecc  []byte // r error-correction codewords, computed from data.
}

// reedSolomonComputeDivisor builds the Reed-Solomon generator polynomial of
// the given degree: the product (x - 2^0)(x - 2^1)...(x - 2^(degree-1)) over
// GF(2^8), with the leading x^degree term dropped (it is always 1).
// Coefficients are stored highest-to-lowest power, excluding that leading
// term.
func reedSolomonComputeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("degree out of range")
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // Start with the monomial x^0.

	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = gfMultiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = gfMultiply(root, 2)
	}

	return result
}

// reedSolomonComputeRemainder returns the error-correction codewords for
// data under the given generator-polynomial divisor: the remainder of
// data*x^len(divisor) divided by divisor, computed via a shift-register
// polynomial division.
func reedSolomonComputeRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i := 0; i < len(result); i++ {
			result[i] ^= gfMultiply(divisor[i], factor)
		}
	}

	return result
}

// reedSolomonDivisor returns the cached generator polynomial for the given
// ECC length, computing and caching it on first use.
func reedSolomonDivisor(eccLen int) []byte {
	if div, ok := reedSolomonDivisors[eccLen]; ok {
		return div
	}
	div := reedSolomonComputeDivisor(eccLen)
	reedSolomonDivisors[eccLen] = div
	return div
}

// makeBlock splits k data codewords into an rsBlock carrying its computed
// ECC codewords.
func makeBlock(data []byte, eccLen int) rsBlock {
	return rsBlock{
		data: data,
		ecc:  reedSolomonComputeRemainder(data, reedSolomonDivisor(eccLen)),
	}
}
