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
	"strconv"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/log"
)

// Format renders a Type as its canonical schema string (C3). Format is the
// inverse of Parse on every well-formed schema: Parse(Format(t)) produces a
// Type equal (by Equal) to t, for every t a Parser can produce.
func Format(t *Type) string {
	if t == nil {
		return ""
	}
	switch t.kind {
	case KindAddress:
		return "address"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindBytes:
		if t.bytesSize == -1 {
			return "bytes"
		}
		return "bytes" + strconv.Itoa(t.bytesSize)
	case KindInteger:
		prefix := "u"
		if t.signed {
			prefix = ""
		}
		return prefix + "int" + strconv.Itoa(t.bits)
	case KindFixed:
		prefix := "u"
		if t.signed {
			prefix = ""
		}
		return prefix + "fixed" + strconv.Itoa(t.bits) + "x" + strconv.Itoa(t.precision)
	case KindArray:
		suffix := "[]"
		if t.arrayLen != -1 {
			suffix = "[" + strconv.Itoa(t.arrayLen) + "]"
		}
		return Format(t.elem) + suffix
	case KindTuple:
		buf := new(strings.Builder)
		buf.WriteByte('(')
		for i, c := range t.components {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(Format(c))
		}
		buf.WriteByte(')')
		return buf.String()
	default:
		return ""
	}
}

// String returns the canonical schema string for t. Formatting a Type built
// through the New* constructors never fails, so unlike Entry.String() in the
// teacher this never needs to swallow and log an error - the only logged case
// is a nil *Type receiver, which is reported at debug level and rendered as
// the empty string.
func (t *Type) String() string {
	if t == nil {
		log.L(context.Background()).Debugf("formatting a nil *abi.Type")
		return ""
	}
	return Format(t)
}
