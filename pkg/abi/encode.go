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
	"strings"

	"github.com/shopspring/decimal"
)

// Encode parses schema and encodes value against the resulting AST (C4).
func Encode(schema string, value interface{}) ([]byte, error) {
	return EncodeCtx(context.Background(), schema, value)
}

// EncodeCtx is the context-aware form of Encode.
func EncodeCtx(ctx context.Context, schema string, value interface{}) ([]byte, error) {
	t, err := ParseCtx(ctx, schema)
	if err != nil {
		return nil, err
	}
	return EncodeValue(ctx, t, value)
}

// EncodeValue encodes value against an already-parsed AST.
func EncodeValue(ctx context.Context, t *Type, value interface{}) ([]byte, error) {
	if t == nil {
		return nil, &ArgumentError{Msg: "encode requires a non-nil *abi.Type"}
	}
	return encodeValue(t, value)
}

func encodeErr(t *Type, value interface{}, msg string) error {
	return &EncodeError{Schema: Format(t), Value: value, Msg: msg}
}

func encodeValue(t *Type, value interface{}) ([]byte, error) {
	switch t.kind {
	case KindAddress:
		return encodeAddress(t, value)
	case KindBool:
		return encodeBool(t, value)
	case KindInteger:
		return encodeInteger(t, value)
	case KindFixed:
		return encodeFixed(t, value)
	case KindBytes:
		return encodeBytes(t, value)
	case KindString:
		return encodeString(t, value)
	case KindArray:
		return encodeArray(t, value)
	case KindTuple:
		return encodeTuple(t, value)
	default:
		return nil, encodeErr(t, value, "unsupported type")
	}
}

func encodeAddress(t *Type, value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, encodeErr(t, value, "expected a hex address string")
	}
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, encodeErr(t, value, "invalid hex characters in address")
	}
	if len(b) != 20 {
		return nil, encodeErr(t, value, "address must be 20 bytes")
	}
	word := make([]byte, 32)
	copy(word[12:], b)
	return word, nil
}

func encodeBool(t *Type, value interface{}) ([]byte, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, encodeErr(t, value, "expected a bool")
	}
	word := make([]byte, 32)
	if b {
		word[31] = 1
	}
	return word, nil
}

// coerceInteger accepts the host integer conveniences we choose to support
// alongside *big.Int, without ever accepting a float (spec §9: IEEE floats
// are prohibited for anything that feeds Integer/Fixed encoding).
func coerceInteger(value interface{}) (*big.Int, bool) {
	switch v := value.(type) {
	case *big.Int:
		return v, true
	case int:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	case string:
		i, ok := new(big.Int).SetString(v, 0)
		return i, ok
	default:
		return nil, false
	}
}

func encodeInteger(t *Type, value interface{}) ([]byte, error) {
	i, ok := coerceInteger(value)
	if !ok {
		return nil, encodeErr(t, value, "expected an integer")
	}
	lo, hi := t.IntegerBounds()
	if i.Cmp(lo) < 0 || i.Cmp(hi) > 0 {
		return nil, encodeErr(t, value, "Value outside type bounds")
	}
	return encodeTwosComplementWord(i), nil
}

// coerceDecimal accepts decimal.Decimal, string, and the exact integer host
// types; float32/float64 are rejected explicitly below by the type switch
// falling through to the default case.
func coerceDecimal(value interface{}) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case *big.Int:
		return decimal.NewFromBigInt(v, 0), true
	default:
		return decimal.Decimal{}, false
	}
}

func encodeFixed(t *Type, value interface{}) ([]byte, error) {
	d, ok := coerceDecimal(value)
	if !ok {
		return nil, encodeErr(t, value, "expected an exact decimal value (floats are not accepted)")
	}
	scaled := d.Shift(int32(t.precision))
	if !scaled.IsInteger() {
		return nil, encodeErr(t, value, "Precision of value is greater than allowed")
	}
	i := scaled.BigInt()
	lo, hi := t.IntegerBounds()
	if i.Cmp(lo) < 0 || i.Cmp(hi) > 0 {
		return nil, encodeErr(t, value, "Value outside type bounds")
	}
	return encodeTwosComplementWord(i), nil
}

func encodeBytes(t *Type, value interface{}) ([]byte, error) {
	b, ok := value.([]byte)
	if !ok {
		if s, isStr := value.(string); isStr {
			b = []byte(s)
		} else {
			return nil, encodeErr(t, value, "expected a byte string")
		}
	}
	if t.bytesSize == -1 {
		return encodeDynamicBytes(b), nil
	}
	if len(b) > t.bytesSize {
		return nil, encodeErr(t, value, "byte string exceeds declared width")
	}
	word := make([]byte, 32)
	copy(word, b)
	return word, nil
}

func encodeString(t *Type, value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, encodeErr(t, value, "expected a string")
	}
	return encodeDynamicBytes([]byte(s)), nil
}

// encodeDynamicBytes encodes a length-prefixed dynamic byte payload, padding
// the payload to a 32-byte multiple for interoperability (spec §9 Open
// Questions: encoders SHOULD pad; decoders MUST accept either).
func encodeDynamicBytes(b []byte) []byte {
	buf := new(bytes.Buffer)
	buf.Write(encodeUint256FromInt(len(b)))
	buf.Write(b)
	if pad := (32 - len(b)%32) % 32; pad > 0 {
		buf.Write(make([]byte, pad))
	}
	return buf.Bytes()
}

func encodeUint256FromInt(n int) []byte {
	return encodeTwosComplementWord(big.NewInt(int64(n)))
}

func asValueSlice(t *Type, value interface{}) ([]interface{}, bool) {
	switch v := value.(type) {
	case []interface{}:
		return v, true
	case nil:
		return nil, true
	default:
		return nil, false
	}
}

func encodeArray(t *Type, value interface{}) ([]byte, error) {
	values, ok := asValueSlice(t, value)
	if !ok {
		return nil, encodeErr(t, value, "expected an array of values")
	}
	if t.arrayLen != -1 && len(values) != t.arrayLen {
		return nil, encodeErr(t, value, "array length does not match declared type")
	}
	children := make([]*Type, len(values))
	for i := range values {
		children[i] = t.elem
	}
	body, err := encodeChildren(t, children, values)
	if err != nil {
		return nil, err
	}
	if t.arrayLen == -1 {
		buf := new(bytes.Buffer)
		buf.Write(encodeUint256FromInt(len(values)))
		buf.Write(body)
		return buf.Bytes(), nil
	}
	return body, nil
}

func encodeTuple(t *Type, value interface{}) ([]byte, error) {
	values, ok := asValueSlice(t, value)
	if !ok {
		return nil, encodeErr(t, value, "expected a tuple of values")
	}
	if len(values) != len(t.components) {
		return nil, encodeErr(t, value, "tuple arity does not match declared type")
	}
	return encodeChildren(t, t.components, values)
}

// encodeChildren implements the shared head/tail layout of spec §4.4: static
// children contribute their encoding inline to the head; dynamic children
// contribute a 32-byte offset pointer to the head and their encoding to the
// tail, with offsets measured from the start of this container's own buffer.
func encodeChildren(parent *Type, children []*Type, values []interface{}) ([]byte, error) {
	tails := make([][]byte, len(children))
	headWidth := 0
	for i, c := range children {
		enc, err := encodeValue(c, values[i])
		if err != nil {
			return nil, err
		}
		tails[i] = enc
		if c.IsDynamic() {
			headWidth += 32
		} else {
			headWidth += c.HeadWidth()
		}
	}

	head := new(bytes.Buffer)
	tail := new(bytes.Buffer)
	tailOffset := headWidth
	for i, c := range children {
		if c.IsDynamic() {
			head.Write(encodeUint256FromInt(tailOffset))
			tail.Write(tails[i])
			tailOffset += len(tails[i])
		} else {
			head.Write(tails[i])
		}
	}
	head.Write(tail.Bytes())
	return head.Bytes(), nil
}
