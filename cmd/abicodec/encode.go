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
	"fmt"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/abi-codec/internal/abimsgs"
	"github.com/kaleido-io/abi-codec/pkg/abi"
	"github.com/kaleido-io/abi-codec/pkg/ethtypes"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode SCHEMA VALUE",
	Short: "Encode a JSON value against an ABIv2 type schema",
	Long: `Parses SCHEMA as an ABIv2 type string and VALUE as a JSON document
matching its shape, then prints the ABI-encoded bytes to stdout as a 0x
hex string.`,
	Args: cobra.ExactArgs(2),
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if len(args) < 1 || args[0] == "" {
		return i18n.NewError(ctx, abimsgs.MsgMissingSchema)
	}
	if len(args) < 2 {
		return i18n.NewError(ctx, abimsgs.MsgMissingValue)
	}
	schema, rawValue := args[0], args[1]

	t, err := abi.ParseCtx(ctx, schema)
	if err != nil {
		return err
	}

	jsonValue, err := parseJSONValue(rawValue)
	if err != nil {
		return fmt.Errorf("invalid JSON value: %w", err)
	}
	value, err := valueForEncode(ctx, t, jsonValue)
	if err != nil {
		return err
	}

	encoded, err := abi.EncodeValue(ctx, t, value)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ethtypes.HexBytes0xPrefix(encoded).String())
	return nil
}
