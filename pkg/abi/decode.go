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
	"context"
	"encoding/hex"
	"math/big"

	"github.com/kaleido-io/abi-codec/pkg/ethutil"
	"github.com/shopspring/decimal"
)

// Decode parses schema and decodes input against the resulting AST (C5),
// using the default options (checksummed addresses).
func Decode(schema string, input []byte) (interface{}, error) {
	return DecodeCtx(context.Background(), schema, input, DefaultDecodeOptions())
}

// DecodeCtx is the context-aware, full-options form of Decode.
func DecodeCtx(ctx context.Context, schema string, input []byte, opts DecodeOptions) (interface{}, error) {
	t, err := ParseCtx(ctx, schema)
	if err != nil {
		return nil, err
	}
	return DecodeValue(ctx, t, input, opts)
}

// DecodeValue decodes input against an already-parsed AST.
func DecodeValue(ctx context.Context, t *Type, input []byte, opts DecodeOptions) (interface{}, error) {
	if t == nil {
		return nil, &ArgumentError{Msg: "decode requires a non-nil *abi.Type"}
	}
	return decodeValue(t, input, opts)
}

func decodeErr(t *Type, input []byte, msg string) error {
	return &DecodeError{Schema: Format(t), Input: input, Msg: msg}
}

func decodeValue(t *Type, buf []byte, opts DecodeOptions) (interface{}, error) {
	switch t.kind {
	case KindAddress:
		return decodeAddress(t, buf, opts)
	case KindBool:
		return decodeBool(t, buf)
	case KindInteger:
		return decodeInteger(t, buf)
	case KindFixed:
		return decodeFixed(t, buf)
	case KindBytes:
		if t.bytesSize == -1 {
			return decodeDynamicBytes(t, buf)
		}
		return decodeStaticBytes(t, buf)
	case KindString:
		b, err := decodeDynamicBytes(t, buf)
		if err != nil {
			return nil, err
		}
		return string(b.([]byte)), nil
	case KindArray:
		return decodeArray(t, buf, opts)
	case KindTuple:
		return decodeTuple(t, buf, opts)
	default:
		return nil, decodeErr(t, buf, "unsupported type")
	}
}

// validateAtom implements spec §4.5's shared atomic-padding check. bits >= 0
// means "this many low bits are in-domain, the rest above must be zero";
// bits < 0 means "this many high bits (|bits|) are in-domain, the rest below
// must be zero" (used for right-padded static Bytes).
func validateAtom(t *Type, word []byte, bits int) error {
	if len(word) != 32 {
		return decodeErr(t, word, "Value is not 32 bytes")
	}
	w := new(big.Int).SetBytes(word)
	var residual *big.Int
	if bits >= 0 {
		residual = new(big.Int).Rsh(w, uint(bits))
	} else {
		residual = new(big.Int).Lsh(w, uint(-bits))
		residual.And(residual, wordMask)
	}
	if residual.Sign() != 0 {
		return decodeErr(t, word, "Value outside type bounds")
	}
	return nil
}

func decodeAddress(t *Type, word []byte, opts DecodeOptions) (interface{}, error) {
	if err := validateAtom(t, word, 160); err != nil {
		return nil, err
	}
	raw := word[12:32]
	if opts.Checksum {
		return ethutil.ChecksumEncode(raw), nil
	}
	return "0x" + hex.EncodeToString(raw), nil
}

func decodeBool(t *Type, word []byte) (interface{}, error) {
	if err := validateAtom(t, word, 1); err != nil {
		return nil, err
	}
	return word[31]&1 == 1, nil
}

func decodeInteger(t *Type, word []byte) (interface{}, error) {
	if len(word) != 32 {
		return nil, decodeErr(t, word, "Value is not 32 bytes")
	}
	var i *big.Int
	if t.signed {
		i = decodeTwosComplementWord(word)
	} else {
		i = new(big.Int).SetBytes(word)
	}
	lo, hi := t.IntegerBounds()
	if i.Cmp(lo) < 0 || i.Cmp(hi) > 0 {
		return nil, decodeErr(t, word, "Value outside type bounds")
	}
	return i, nil
}

func decodeFixed(t *Type, word []byte) (interface{}, error) {
	if len(word) != 32 {
		return nil, decodeErr(t, word, "Value is not 32 bytes")
	}
	var i *big.Int
	if t.signed {
		i = decodeTwosComplementWord(word)
	} else {
		i = new(big.Int).SetBytes(word)
	}
	lo, hi := t.IntegerBounds()
	if i.Cmp(lo) < 0 || i.Cmp(hi) > 0 {
		return nil, decodeErr(t, word, "Value outside type bounds")
	}
	return decimal.NewFromBigInt(i, -int32(t.precision)), nil
}

func decodeStaticBytes(t *Type, word []byte) (interface{}, error) {
	if err := validateAtom(t, word, -t.bytesSize*8); err != nil {
		return nil, err
	}
	out := make([]byte, t.bytesSize)
	copy(out, word[:t.bytesSize])
	return out, nil
}

func decodeDynamicBytes(t *Type, buf []byte) (interface{}, error) {
	if len(buf) < 32 {
		return nil, decodeErr(t, buf, "Invalid size for dynamic bytes")
	}
	lengthWord := new(big.Int).SetBytes(buf[0:32])
	if !lengthWord.IsUint64() {
		return nil, decodeErr(t, buf, "Data section is not the correct size")
	}
	length := lengthWord.Uint64()
	if uint64(len(buf)-32) < length {
		return nil, decodeErr(t, buf, "Data section is not the correct size")
	}
	out := make([]byte, length)
	copy(out, buf[32:32+length])
	return out, nil
}

func decodeArray(t *Type, buf []byte, opts DecodeOptions) (interface{}, error) {
	var n int
	var elementsBuf []byte
	if t.arrayLen != -1 {
		n = t.arrayLen
		elementsBuf = buf
	} else {
		if len(buf) < 32 {
			return nil, decodeErr(t, buf, "Data section is not the correct size")
		}
		lengthWord := new(big.Int).SetBytes(buf[0:32])
		if !lengthWord.IsUint64() {
			return nil, decodeErr(t, buf, "Data section is not the correct size")
		}
		n = int(lengthWord.Uint64())
		elementsBuf = buf[32:]
		if n == 0 {
			return []interface{}{}, nil
		}
	}

	children := make([]*Type, n)
	for i := range children {
		children[i] = t.elem
	}
	return decodeChildren(t, children, elementsBuf, opts)
}

func decodeTuple(t *Type, buf []byte, opts DecodeOptions) (interface{}, error) {
	return decodeChildren(t, t.components, buf, opts)
}

// decodeChildren implements the shared head/tail walk of spec §4.5: it reads
// each child's head slot in turn, dereferencing a 32-byte offset pointer for
// dynamic children (the offset is measured from the start of buf - this
// container's own buffer - and the child's slice ends where the next dynamic
// child's payload starts) and slicing the static width inline otherwise.
func decodeChildren(parent *Type, children []*Type, buf []byte, opts DecodeOptions) ([]interface{}, error) {
	values := make([]interface{}, len(children))
	pos := 0
	allStatic := true
	for i, c := range children {
		if c.IsDynamic() {
			allStatic = false
			if pos+32 > len(buf) {
				return nil, decodeErr(parent, buf, "Data section is not the correct size")
			}
			ptrWord := new(big.Int).SetBytes(buf[pos : pos+32])
			if !ptrWord.IsUint64() || ptrWord.Uint64() > uint64(len(buf)) {
				return nil, decodeErr(parent, buf, "Data section is not the correct size")
			}
			ptr := int(ptrWord.Uint64())
			// The child's slice runs up to the next dynamic child's pointer;
			// the last dynamic child's slice runs to the end of buf.
			end := len(buf)
			next := pos + 32
			for _, d := range children[i+1:] {
				if d.IsDynamic() {
					if next+32 <= len(buf) {
						nw := new(big.Int).SetBytes(buf[next : next+32])
						if nw.IsUint64() && nw.Uint64() >= uint64(ptr) && nw.Uint64() <= uint64(len(buf)) {
							end = int(nw.Uint64())
						}
					}
					break
				}
				next += d.HeadWidth()
			}
			v, err := decodeValue(c, buf[ptr:end], opts)
			if err != nil {
				return nil, err
			}
			values[i] = v
			pos += 32
		} else {
			w := c.HeadWidth()
			if pos+w > len(buf) {
				return nil, decodeErr(parent, buf, "Static array value invalid length")
			}
			v, err := decodeValue(c, buf[pos:pos+w], opts)
			if err != nil {
				return nil, err
			}
			values[i] = v
			pos += w
		}
	}
	// With no dynamic child, the tail offset scheme above never inspects
	// anything past the last head slot - so a buffer with trailing bytes
	// beyond what the static partition consumes would otherwise decode
	// successfully and silently discard them.
	if allStatic && pos != len(buf) {
		return nil, decodeErr(parent, buf, "Invalid array size")
	}
	return values, nil
}
