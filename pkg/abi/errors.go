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
	"encoding/hex"
	"fmt"
)

// ParseError is raised by the Parser when a schema string is syntactically or
// semantically invalid. Where is the offending substring (or the full schema
// when no sub-span is more specific).
type ParseError struct {
	Where string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Error at %q - %s", e.Where, e.Msg)
}

// EncodeError is raised by the Encoder when a value does not conform to its
// schema - wrong kind, out of bounds, excess precision, wrong length.
type EncodeError struct {
	Schema string
	Value  interface{}
	Msg    string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("Error encoding %#v as %q - %s", e.Value, e.Schema, e.Msg)
}

// DecodeError is raised by the Decoder when input bytes are malformed
// relative to a schema. Input is rendered to hex lazily, only when Error() is
// actually called, since DecodeError values may carry large buffers by
// reference (spec §9).
type DecodeError struct {
	Schema string
	Input  []byte
	Msg    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Error decoding 0x%s as %q - %s", hex.EncodeToString(e.Input), e.Schema, e.Msg)
}

// ArgumentError signals that a top-level argument was the wrong shape
// entirely (a non-AST where a *Type was expected, a non-byte-buffer where
// decode input was expected, etc). It is distinct from the three codec error
// types above: it is never attached to a schema node, and is never something
// a conforming caller should expect to recover from.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }
