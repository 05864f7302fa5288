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

// Package ethutil holds the small pure-function collaborators the codec
// treats as external (spec §1): the EIP-55 checksum routine and the
// keccak-256 primitive it is built on. Neither belongs inside pkg/abi - both
// are useful to any caller that touches Ethereum addresses, codec or not.
package ethutil

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/crypto/sha3"
)

// Keccak256 hashes b with the Keccak-256 permutation (the pre-standardization
// variant Ethereum uses, not NIST SHA3-256).
func Keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

// ChecksumEncode renders a 20-byte address as its EIP-55 mixed-case
// checksummed hex string. Adapted from AddressWithChecksum.String() in the
// teacher's pkg/ethtypes/address.go, generalized to a free function over a
// raw []byte rather than a fixed-size array type.
func ChecksumEncode(addr []byte) string {
	hexAddr := hex.EncodeToString(addr)
	hexHash := hex.EncodeToString(Keccak256([]byte(hexAddr)))

	buf := strings.Builder{}
	buf.WriteString("0x")
	for i := 0; i < len(hexAddr); i++ {
		digit, _ := strconv.ParseInt(string(hexHash[i]), 16, 64)
		if digit >= 8 {
			buf.WriteRune(unicode.ToUpper(rune(hexAddr[i])))
		} else {
			buf.WriteRune(unicode.ToLower(rune(hexAddr[i])))
		}
	}
	return buf.String()
}
