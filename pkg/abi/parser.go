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
	"regexp"
	"strconv"
)

// valueAtomicPattern matches the value-atomic elementary types with a
// numeric suffix: bytesN, [u]intM, [u]fixedMxN. This mirrors the
// VALUE_PATTERN regular expression of the Python reference implementation in
// original_source/src/eth/codecs/abi/parser.py.
var valueAtomicPattern = regexp.MustCompile(`^bytes(\d+)$|^u?fixed(\d+)x(\d+)$|^u?int(\d+)$`)

// arraySuffixPattern splits "<subtype>[<digits?>]" into its two capture
// groups. Because Go's regexp is greedy by default, the first group consumes
// as much of the string as possible, so for multi-dimensional arrays such as
// "string[2][]" the match correctly isolates the outermost (last) dimension.
var arraySuffixPattern = regexp.MustCompile(`^(.+)\[(\d*)\]$`)

// Parse parses a schema string into a Type AST (C2). See spec §4.2 for the
// algorithm; the error messages below are pinned by spec §8's testable
// properties and must be produced verbatim.
func Parse(schema string) (*Type, error) {
	return ParseCtx(context.Background(), schema)
}

// ParseCtx is the context-aware form of Parse.
func ParseCtx(ctx context.Context, schema string) (*Type, error) {
	return parseType(schema)
}

func parseType(typestr string) (*Type, error) {
	// 1. literal atomics
	switch typestr {
	case "address":
		return NewAddress(), nil
	case "bool":
		return NewBool(), nil
	case "bytes":
		t, _ := NewBytes(-1)
		return t, nil
	case "string":
		return NewString(), nil
	case "()":
		return NewTuple(nil)
	}

	// 2. value atomics: bytesN, [u]intM, [u]fixedMxN
	if m := valueAtomicPattern.FindStringSubmatch(typestr); m != nil {
		switch {
		case m[1] != "": // bytesN
			n, _ := strconv.Atoi(m[1])
			if n < 1 || n > 32 {
				return nil, &ParseError{Where: typestr, Msg: quote(m[1]) + " is not a valid byte array width"}
			}
			t, _ := NewBytes(n)
			return t, nil
		case m[2] != "": // [u]fixedMxN
			bits, _ := strconv.Atoi(m[2])
			prec, _ := strconv.Atoi(m[3])
			if bits < 8 || bits > 256 || bits%8 != 0 {
				return nil, &ParseError{Where: typestr, Msg: quote(m[2]) + " is not a valid fixed point width"}
			}
			if prec < 0 || prec > 80 {
				return nil, &ParseError{Where: typestr, Msg: quote(m[3]) + " is not a valid fixed point precision"}
			}
			t, _ := NewFixed(bits, prec, typestr[0] != 'u')
			return t, nil
		default: // [u]intM
			bits, _ := strconv.Atoi(m[4])
			if bits < 8 || bits > 256 || bits%8 != 0 {
				return nil, &ParseError{Where: typestr, Msg: quote(m[4]) + " is not a valid integer width"}
			}
			t, _ := NewInteger(bits, typestr[0] != 'u')
			return t, nil
		}
	}

	// 3. array: "<subtype>[<digits?>]"
	if m := arraySuffixPattern.FindStringSubmatch(typestr); m != nil {
		subtypeStr, lenStr := m[1], m[2]
		if subtypeStr == "()" {
			return nil, &ParseError{Where: typestr, Msg: "the empty tuple type '()' cannot be used as an array element"}
		}
		length := -1
		if lenStr != "" {
			n, err := strconv.Atoi(lenStr)
			if err != nil || n < 1 {
				return nil, &ParseError{Where: typestr, Msg: quote(lenStr) + " is not a valid array size"}
			}
			length = n
		}
		elem, err := parseType(subtypeStr)
		if err != nil {
			return nil, err
		}
		return NewArray(elem, length)
	}

	// 4. tuple: "(<type>(,<type>)*)"
	if len(typestr) >= 2 && typestr[0] == '(' && typestr[len(typestr)-1] == ')' && isParenWrapped(typestr) {
		parts, err := splitTupleComponents(typestr)
		if err != nil {
			return nil, err
		}
		components := make([]*Type, len(parts))
		for i, p := range parts {
			if p == "()" {
				return nil, &ParseError{Where: typestr, Msg: "the empty tuple type '()' cannot be used as a tuple component"}
			}
			c, err := parseType(p)
			if err != nil {
				return nil, err
			}
			components[i] = c
		}
		return NewTuple(components)
	}

	return nil, &ParseError{Where: typestr, Msg: "ABI type not parseable"}
}

// isParenWrapped reports whether typestr is wrapped in a single matching
// pair of parentheses spanning the whole string - i.e. the parenthesis depth
// never returns to zero before the final character.
func isParenWrapped(typestr string) bool {
	depth := 0
	for i, r := range typestr {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(typestr)-1 {
				return false
			}
		}
	}
	return depth == 0
}

// splitTupleComponents splits the body of a "(...)" schema on top-level
// commas, tracking parenthesis depth so nested tuples survive intact. A
// dangling/leading/consecutive comma is rejected with the same diagnostic the
// Python reference implementation uses for malformed tuple bodies.
func splitTupleComponents(typestr string) ([]string, error) {
	body := typestr[1 : len(typestr)-1]
	if body == "" {
		return nil, nil
	}

	var parts []string
	depth := 0
	start := 0
	for i, r := range body {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, body[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, body[start:])

	for _, p := range parts {
		if p == "" {
			return nil, &ParseError{Where: typestr, Msg: "Dangling comma detected in type string"}
		}
	}
	return parts, nil
}

func quote(s string) string {
	return "'" + s + "'"
}
