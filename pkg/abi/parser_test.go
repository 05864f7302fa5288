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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteralAtomics(t *testing.T) {
	for _, s := range []string{"address", "bool", "bytes", "string", "()"} {
		ty, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, Format(ty))
	}
}

func TestParseValueAtomics(t *testing.T) {
	ty, err := Parse("uint256")
	require.NoError(t, err)
	assert.Equal(t, KindInteger, ty.Kind())
	assert.Equal(t, 256, ty.Bits())
	assert.False(t, ty.Signed())

	ty, err = Parse("int128")
	require.NoError(t, err)
	assert.True(t, ty.Signed())
	assert.Equal(t, 128, ty.Bits())

	ty, err = Parse("bytes32")
	require.NoError(t, err)
	assert.Equal(t, 32, ty.BytesSize())

	ty, err = Parse("ufixed128x10")
	require.NoError(t, err)
	assert.Equal(t, KindFixed, ty.Kind())
	assert.Equal(t, 128, ty.Bits())
	assert.Equal(t, 10, ty.Precision())
	assert.False(t, ty.Signed())
}

func TestParseArrays(t *testing.T) {
	ty, err := Parse("string[]")
	require.NoError(t, err)
	assert.Equal(t, KindArray, ty.Kind())
	assert.Equal(t, -1, ty.ArrayLen())
	assert.Equal(t, KindString, ty.Elem().Kind())

	ty, err = Parse("uint8[3]")
	require.NoError(t, err)
	assert.Equal(t, 3, ty.ArrayLen())

	ty, err = Parse("string[2][]")
	require.NoError(t, err)
	assert.Equal(t, -1, ty.ArrayLen())
	assert.Equal(t, 2, ty.Elem().ArrayLen())
	assert.Equal(t, KindString, ty.Elem().Elem().Kind())
}

func TestParseTuples(t *testing.T) {
	ty, err := Parse("(uint8,string,uint8)")
	require.NoError(t, err)
	require.Len(t, ty.Components(), 3)
	assert.Equal(t, KindInteger, ty.Components()[0].Kind())
	assert.Equal(t, KindString, ty.Components()[1].Kind())

	ty, err = Parse("((uint8,uint8),bool)")
	require.NoError(t, err)
	require.Len(t, ty.Components(), 2)
	assert.Equal(t, KindTuple, ty.Components()[0].Kind())
	require.Len(t, ty.Components()[0].Components(), 2)
}

func TestParseRejectsInvalidWidths(t *testing.T) {
	_, err := Parse("uint257")
	require.Error(t, err)
	assert.Equal(t, `Error at "uint257" - '257' is not a valid integer width`, err.Error())

	_, err = Parse("bytes33")
	require.Error(t, err)
	assert.Equal(t, `Error at "bytes33" - '33' is not a valid byte array width`, err.Error())

	_, err = Parse("ufixed128x81")
	require.Error(t, err)
	assert.Equal(t, `Error at "ufixed128x81" - '81' is not a valid fixed point precision`, err.Error())

	_, err = Parse("uint256[0]")
	require.Error(t, err)
	assert.Equal(t, `Error at "uint256[0]" - '0' is not a valid array size`, err.Error())
}

func TestParseRejectsMalformedTuples(t *testing.T) {
	_, err := Parse("(a,,b)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dangling comma detected in type string")

	_, err = Parse("(())")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty tuple type '()' cannot be used as a tuple component")
}

func TestParseRejectsEmptyTupleAsArrayElement(t *testing.T) {
	_, err := Parse("()[]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty tuple type '()' cannot be used as an array element")
}

func TestParseRejectsUnparseable(t *testing.T) {
	_, err := Parse("notatype")
	require.Error(t, err)
	assert.Equal(t, `Error at "notatype" - ABI type not parseable`, err.Error())
}

func TestParseRoundTripsThroughFormat(t *testing.T) {
	for _, s := range []string{
		"address", "bool", "string", "bytes", "bytes32",
		"uint256", "int8", "ufixed128x10", "fixed8x0",
		"uint8[]", "uint8[3]", "string[2][]",
		"(uint8,string,uint8)", "()", "((uint8,uint8),bool)",
	} {
		ty, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, Format(ty), s)

		roundTripped, err := Parse(Format(ty))
		require.NoError(t, err, s)
		assert.True(t, ty.Equal(roundTripped), s)
	}
}
