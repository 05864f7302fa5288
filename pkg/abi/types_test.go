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

func TestAtomicDynamicAndHeadWidth(t *testing.T) {
	assert.False(t, NewAddress().IsDynamic())
	assert.Equal(t, 32, NewAddress().HeadWidth())

	assert.True(t, NewString().IsDynamic())
	assert.Equal(t, 32, NewString().HeadWidth())

	dynBytes, err := NewBytes(-1)
	require.NoError(t, err)
	assert.True(t, dynBytes.IsDynamic())

	staticBytes, err := NewBytes(32)
	require.NoError(t, err)
	assert.False(t, staticBytes.IsDynamic())
}

func TestArrayDynamicPropagation(t *testing.T) {
	u8, err := NewInteger(8, false)
	require.NoError(t, err)

	staticArr, err := NewArray(u8, 3)
	require.NoError(t, err)
	assert.False(t, staticArr.IsDynamic())
	assert.Equal(t, 96, staticArr.HeadWidth())

	dynLenArr, err := NewArray(u8, -1)
	require.NoError(t, err)
	assert.True(t, dynLenArr.IsDynamic())
	assert.Equal(t, 32, dynLenArr.HeadWidth())

	str := NewString()
	dynElemArr, err := NewArray(str, 2)
	require.NoError(t, err)
	assert.True(t, dynElemArr.IsDynamic(), "array of a dynamic element is dynamic even with a fixed length")
}

func TestTupleDynamicPropagation(t *testing.T) {
	u8, _ := NewInteger(8, false)
	boolT := NewBool()

	allStatic, err := NewTuple([]*Type{u8, boolT})
	require.NoError(t, err)
	assert.False(t, allStatic.IsDynamic())
	assert.Equal(t, 64, allStatic.HeadWidth())

	withDynamic, err := NewTuple([]*Type{u8, NewString()})
	require.NoError(t, err)
	assert.True(t, withDynamic.IsDynamic())
	assert.Equal(t, 32, withDynamic.HeadWidth())

	empty, err := NewTuple(nil)
	require.NoError(t, err)
	assert.False(t, empty.IsDynamic())
	assert.Equal(t, 0, empty.HeadWidth())
}

func TestEmptyTupleRejectedAsNestedComponent(t *testing.T) {
	empty, err := NewTuple(nil)
	require.NoError(t, err)

	_, err = NewArray(empty, -1)
	assert.Error(t, err)

	_, err = NewTuple([]*Type{empty})
	assert.Error(t, err)
}

func TestIntegerBounds(t *testing.T) {
	u8, _ := NewInteger(8, false)
	lo, hi := u8.IntegerBounds()
	assert.Equal(t, "0", lo.String())
	assert.Equal(t, "255", hi.String())

	i8, _ := NewInteger(8, true)
	lo, hi = i8.IntegerBounds()
	assert.Equal(t, "-128", lo.String())
	assert.Equal(t, "127", hi.String())
}

func TestFixedBounds(t *testing.T) {
	f, err := NewFixed(16, 2, true)
	require.NoError(t, err)
	lo, hi := f.FixedBounds()
	assert.Equal(t, "-327.68", lo.String())
	assert.Equal(t, "327.67", hi.String())
}

func TestTypeEqual(t *testing.T) {
	a, _ := Parse("uint256")
	b, _ := Parse("uint256")
	c, _ := Parse("int256")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestInvalidConstructorArguments(t *testing.T) {
	_, err := NewInteger(7, false)
	assert.Error(t, err)

	_, err = NewFixed(256, 81, false)
	assert.Error(t, err)

	_, err = NewBytes(33)
	assert.Error(t, err)

	_, err = NewArray(nil, 1)
	assert.Error(t, err)

	_, err = NewArray(NewBool(), 0)
	assert.Error(t, err)
}
