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

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/kaleido-io/abi-codec/internal/abimsgs"
	"github.com/kaleido-io/abi-codec/pkg/abi"
	"github.com/kaleido-io/abi-codec/pkg/ethtypes"
	"github.com/shopspring/decimal"

	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// parseJSONValue unmarshals a CLI VALUE argument with UseNumber, so numeric
// literals arrive as json.Number (exact source text) rather than float64 -
// the same "no IEEE floats in the encode path" discipline the codec itself
// enforces for Fixed.
func parseJSONValue(raw string) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// valueForEncode converts a generic JSON value (string/json.Number/bool/
// []interface{}) into the concrete Go value pkg/abi.Encode expects for t,
// using t to disambiguate (a JSON string means different things for an
// Address than it does for a dynamic Bytes).
func valueForEncode(ctx context.Context, t *abi.Type, raw interface{}) (interface{}, error) {
	switch t.Kind() {
	case abi.KindAddress, abi.KindBool, abi.KindString:
		return raw, nil
	case abi.KindInteger:
		return coerceBigInt(ctx, raw)
	case abi.KindFixed:
		return coerceDecimal(raw)
	case abi.KindBytes:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a hex string")
		}
		b, err := ethtypes.NewHexBytes0xPrefix(s)
		if err != nil {
			return nil, err
		}
		return []byte(b), nil
	case abi.KindArray:
		items, ok := raw.([]interface{})
		if !ok {
			return nil, fmt.Errorf("expected a JSON array")
		}
		out := make([]interface{}, len(items))
		for i, item := range items {
			v, err := valueForEncode(ctx, t.Elem(), item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case abi.KindTuple:
		items, ok := raw.([]interface{})
		if !ok {
			return nil, fmt.Errorf("expected a JSON array for a tuple value")
		}
		if len(items) != len(t.Components()) {
			return nil, fmt.Errorf("tuple arity mismatch: expected %d, got %d", len(t.Components()), len(items))
		}
		out := make([]interface{}, len(items))
		for i, item := range items {
			v, err := valueForEncode(ctx, t.Components()[i], item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	default:
		return raw, nil
	}
}

func coerceBigInt(ctx context.Context, raw interface{}) (*big.Int, error) {
	switch v := raw.(type) {
	case json.Number:
		return ethtypes.BigIntegerFromString(ctx, v.String())
	case string:
		return ethtypes.BigIntegerFromString(ctx, v)
	default:
		return nil, i18n.NewError(ctx, abimsgs.MsgInvalidJSONTypeForBigInt, raw)
	}
}

func coerceDecimal(raw interface{}) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		return decimal.NewFromString(v)
	default:
		return decimal.Decimal{}, fmt.Errorf("expected a decimal string, got %T", raw)
	}
}

// valueForJSON converts a decoded pkg/abi value back into something
// encoding/json can marshal - *big.Int and decimal.Decimal render as their
// decimal string form so precision is never silently narrowed to float64.
func valueForJSON(v interface{}) interface{} {
	switch tv := v.(type) {
	case *big.Int:
		return tv.String()
	case decimal.Decimal:
		return tv.String()
	case []byte:
		return ethtypes.HexBytes0xPrefix(tv).String()
	case []interface{}:
		out := make([]interface{}, len(tv))
		for i, item := range tv {
			out[i] = valueForJSON(item)
		}
		return out
	default:
		return tv
	}
}
