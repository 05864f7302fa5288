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
	"math/big"

	"github.com/shopspring/decimal"
)

// Kind classifies a Type node - this is the tag of the AST sum type described
// in the ABIv2 type grammar. Unlike the teacher's ParameterType (which models
// elementary/array/tuple as three loosely related concepts driven by a JSON
// "components" side-channel) a Kind fully determines which of the Type
// struct's fields are meaningful, and the struct itself carries everything
// needed to encode, decode or format an instance without any external state.
type Kind int

const (
	KindAddress Kind = iota
	KindBool
	KindInteger
	KindFixed
	KindBytes
	KindString
	KindArray
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindAddress:
		return "address"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFixed:
		return "fixed"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// Type is an immutable node of the ABI type AST (C1). Every Type is built
// through one of the New* constructors (or the Parser), which compute and
// cache IsDynamic/HeadWidth once at construction time - the type tree never
// mutates afterwards, so there is no need for locking or memoization beyond
// that single computation (spec §5).
type Type struct {
	kind Kind

	// Integer / Fixed
	bits      int
	signed    bool
	precision int // Fixed only

	// Bytes: -1 means dynamic ("bytes" with no length suffix)
	bytesSize int

	// Array
	elem     *Type
	arrayLen int // -1 means dynamic length

	// Tuple
	components []*Type

	dynamic   bool
	headWidth int
}

// Kind returns the tag of this node.
func (t *Type) Kind() Kind { return t.kind }

// IsDynamic reports whether instances of this type contribute a pointer (not
// inline data) to an enclosing head section. See spec §3.
func (t *Type) IsDynamic() bool { return t.dynamic }

// HeadWidth is the number of bytes an instance of this type contributes to
// its enclosing head section (spec §3). For dynamic types this is always 32
// (the pointer width).
func (t *Type) HeadWidth() int { return t.headWidth }

// Bits returns the bit width of an Integer or Fixed type.
func (t *Type) Bits() int { return t.bits }

// Signed reports whether an Integer or Fixed type is signed.
func (t *Type) Signed() bool { return t.signed }

// Precision returns the number of fractional decimal digits of a Fixed type.
func (t *Type) Precision() int { return t.precision }

// BytesSize returns the fixed byte width of a static Bytes type, or -1 if the
// type is the dynamic "bytes".
func (t *Type) BytesSize() int { return t.bytesSize }

// Elem returns the element type of an Array.
func (t *Type) Elem() *Type { return t.elem }

// ArrayLen returns the fixed length of an Array, or -1 if the array has a
// dynamic length.
func (t *Type) ArrayLen() int { return t.arrayLen }

// Components returns the ordered component types of a Tuple.
func (t *Type) Components() []*Type { return t.components }

// Equal reports structural equality. Two Types are equal iff their canonical
// schema strings are equal - the Go analogue of the frozen-dataclass field
// equality the Python reference implementation gets for free, and a direct
// witness of the parser round-trip property (spec §8).
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	return Format(t) == Format(other)
}

// IntegerBounds returns the inclusive [lo, hi] range of values representable
// by an Integer type.
func (t *Type) IntegerBounds() (lo, hi *big.Int) {
	return integerBounds(t.bits, t.signed)
}

// FixedBounds returns the inclusive [lo, hi] range of values representable by
// a Fixed type, as exact decimals.
func (t *Type) FixedBounds() (lo, hi decimal.Decimal) {
	ilo, ihi := integerBounds(t.bits, t.signed)
	return decimal.NewFromBigInt(ilo, -int32(t.precision)), decimal.NewFromBigInt(ihi, -int32(t.precision))
}

func integerBounds(bits int, signed bool) (lo, hi *big.Int) {
	hi = new(big.Int).Lsh(big.NewInt(1), uint(bits))
	hi.Sub(hi, big.NewInt(1))
	lo = big.NewInt(0)
	if signed {
		lo = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(bits-1)))
		hi = new(big.Int).Rsh(hi, 1)
	}
	return lo, hi
}

// NewAddress constructs the Address type.
func NewAddress() *Type {
	return &Type{kind: KindAddress, headWidth: 32}
}

// NewBool constructs the Bool type.
func NewBool() *Type {
	return &Type{kind: KindBool, headWidth: 32}
}

// NewString constructs the (always dynamic) String type.
func NewString() *Type {
	return &Type{kind: KindString, dynamic: true, headWidth: 32}
}

// NewInteger constructs an Integer type. bits must be in 8..=256 and a
// multiple of 8.
func NewInteger(bits int, signed bool) (*Type, error) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return nil, &ArgumentError{Msg: "integer bit width must be a multiple of 8 in the range [8,256]"}
	}
	return &Type{kind: KindInteger, bits: bits, signed: signed, headWidth: 32}, nil
}

// NewFixed constructs a Fixed type. bits must be in 8..=256 and a multiple of
// 8; precision must be in 0..=80.
func NewFixed(bits, precision int, signed bool) (*Type, error) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return nil, &ArgumentError{Msg: "fixed point bit width must be a multiple of 8 in the range [8,256]"}
	}
	if precision < 0 || precision > 80 {
		return nil, &ArgumentError{Msg: "fixed point precision must be in the range [0,80]"}
	}
	return &Type{kind: KindFixed, bits: bits, precision: precision, signed: signed, headWidth: 32}, nil
}

// NewBytes constructs a Bytes type. size of -1 denotes the dynamic "bytes"
// type; otherwise size must be in 1..=32.
func NewBytes(size int) (*Type, error) {
	if size != -1 && (size < 1 || size > 32) {
		return nil, &ArgumentError{Msg: "bytes width must be -1 (dynamic) or in the range [1,32]"}
	}
	return &Type{kind: KindBytes, bytesSize: size, dynamic: size == -1, headWidth: 32}, nil
}

// NewArray constructs an Array type wrapping elem. length of -1 denotes a
// dynamic-length array; otherwise length must be >= 1. A zero-arity tuple
// element is rejected (spec §3 invariants).
func NewArray(elem *Type, length int) (*Type, error) {
	if elem == nil {
		return nil, &ArgumentError{Msg: "array element type must not be nil"}
	}
	if elem.kind == KindTuple && len(elem.components) == 0 {
		return nil, &ArgumentError{Msg: "the empty tuple type '()' cannot be used as an array element"}
	}
	if length != -1 && length < 1 {
		return nil, &ArgumentError{Msg: "array length must be -1 (dynamic) or >= 1"}
	}
	t := &Type{kind: KindArray, elem: elem, arrayLen: length}
	if length == -1 || elem.dynamic {
		t.dynamic = true
		t.headWidth = 32
	} else {
		t.headWidth = elem.headWidth * length
	}
	return t, nil
}

// NewTuple constructs a Tuple type from an ordered list of component types.
// An empty slice is valid only at the top level; a zero-arity tuple nested as
// one of components is rejected (spec §3 invariants).
func NewTuple(components []*Type) (*Type, error) {
	cs := make([]*Type, len(components))
	copy(cs, components)
	for _, c := range cs {
		if c == nil {
			return nil, &ArgumentError{Msg: "tuple component type must not be nil"}
		}
		if c.kind == KindTuple && len(c.components) == 0 {
			return nil, &ArgumentError{Msg: "the empty tuple type '()' cannot be used as a tuple component"}
		}
	}
	t := &Type{kind: KindTuple, components: cs}
	dyn := false
	width := 0
	for _, c := range cs {
		if c.dynamic {
			dyn = true
		}
		width += c.headWidth
	}
	if dyn {
		t.dynamic = true
		t.headWidth = 32
	} else {
		t.headWidth = width
	}
	return t, nil
}
