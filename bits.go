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

// Small bit/sign helpers shared across the matrix builder, masking, and
// table initialization. min/max are Go 1.21 builtins and are used directly
// elsewhere in this package rather than redeclared here.

// abs returns the absolute value of a.
func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// bToI converts a bool to 0 or 1, the width every ISO bitstream field is
// ultimately built from.
func bToI(b bool) int {
	if b {
		return 1
	}
	return 0
}

// bToModule is bToI typed for module values.
func bToModule(b bool) module {
	return module(bToI(b))
}

// getBit extracts bit i (0 = least significant) of x.
func getBit(x, i int) int {
	return x >> i & 1
}

// getBitAsBool is getBit as a bool.
func getBitAsBool(x, i int) bool {
	return getBit(x, i) == 1
}
