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

import (
	"bytes"
	"context"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDecodeUint256(t *testing.T) {
	v, err := Decode("uint256", mustHex(t, "000000000000000000000000000000000000000000000000000000000000002a"))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(42), v)
}

func TestDecodeSignedIntegerTwosComplement(t *testing.T) {
	v, err := Decode("int128", mustHex(t, "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffd6"))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(-42), v)
}

func TestDecodeAddressChecksummed(t *testing.T) {
	word := mustHex(t, "000000000000000000000000cd2a3d9f938e13cd947ec05abc7fe734df8dd826")
	v, err := DecodeCtx(context.Background(), "address", word, DecodeOptions{Checksum: true})
	require.NoError(t, err)
	assert.Equal(t, "0xCd2a3d9f938e13Cd947eC05ABC7fe734df8DD826", v)

	v, err = DecodeCtx(context.Background(), "address", word, DecodeOptions{Checksum: false})
	require.NoError(t, err)
	assert.Equal(t, "0xcd2a3d9f938e13cd947ec05abc7fe734df8dd826", v)
}

func TestDecodeRejectsPaddingViolation(t *testing.T) {
	// a bool word with a stray bit set above bit 0
	_, err := Decode("bool", mustHex(t, "0000000000000000000000000000000000000000000000000000000000000002"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Value outside type bounds")
}

func TestDecodeRejectsWrongWordLength(t *testing.T) {
	_, err := Decode("uint256", mustHex(t, "2a"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Value is not 32 bytes")
}

func TestDecodeEmptyTuple(t *testing.T) {
	v, err := Decode("()", []byte{})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{}, v)
}

func TestDecodeDynamicStringLengthPrefixStrictness(t *testing.T) {
	// declares length 32 but only provides 4 payload bytes
	buf := append(mustHex(t, "0000000000000000000000000000000000000000000000000000000000000020"), mustHex(t, "deadbeef")...)
	_, err := Decode("string", buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Data section is not the correct size")
}

func TestDecodeRejectsNonDivisibleStaticArrayPartition(t *testing.T) {
	// two uint256 words (64 bytes) plus one stray trailing byte
	buf := append(bytes.Repeat([]byte{0x01}, 64), 0x01)
	_, err := Decode("uint256[2]", buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid array size")
}

func TestDecodeInvertsTupleEncoding(t *testing.T) {
	encoded, err := Encode("(uint8,string,uint8)", []interface{}{big.NewInt(1), "Hello World", big.NewInt(2)})
	require.NoError(t, err)

	decoded, err := Decode("(uint8,string,uint8)", encoded)
	require.NoError(t, err)

	values, ok := decoded.([]interface{})
	require.True(t, ok)
	require.Len(t, values, 3)
	assert.Equal(t, big.NewInt(1), values[0])
	assert.Equal(t, "Hello World", values[1])
	assert.Equal(t, big.NewInt(2), values[2])
}

func TestDecodeInvertsDynamicStringArray(t *testing.T) {
	encoded, err := Encode("string[]", []interface{}{"Hello", "World"})
	require.NoError(t, err)

	decoded, err := Decode("string[]", encoded)
	require.NoError(t, err)

	values, ok := decoded.([]interface{})
	require.True(t, ok)
	require.Equal(t, []interface{}{"Hello", "World"}, values)
}
