// Copyright © 2022 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package abi

import "math/big"

// wordBit / wordModulus / wordSignBit are the 256-bit two's-complement
// constants every Integer and Fixed value is ultimately encoded against - the
// wire word is always 32 bytes regardless of the declared bit width. Adapted
// from the single-width helpers of pkg/abi/signedi256.go in the teacher,
// generalized below to narrower (bits < 256) values, which callers
// bounds-check against their declared width before they are widened onto the
// word.
var wordBit = big.NewInt(1)
var wordModulus = new(big.Int).Lsh(wordBit, 256)
var wordMask = new(big.Int).Sub(wordModulus, big.NewInt(1))
var wordSignBit = new(big.Int).Lsh(wordBit, 255)

// encodeTwosComplementWord serializes i as a 32-byte big-endian two's
// complement word. i is assumed already bounds-checked against its
// declared bit width; the mask against the full 256-bit modulus is what
// sign-extends a narrower negative value (e.g. int8(-1)) out to the word.
func encodeTwosComplementWord(i *big.Int) []byte {
	tc := new(big.Int).And(i, wordMask)
	b := make([]byte, 32)
	return tc.FillBytes(b)
}

// decodeTwosComplementWord parses a 32-byte big-endian two's complement word
// as a signed integer.
func decodeTwosComplementWord(word []byte) *big.Int {
	i := new(big.Int).SetBytes(word)
	if i.Cmp(wordSignBit) < 0 {
		return i
	}
	return i.Sub(i, wordModulus)
}
