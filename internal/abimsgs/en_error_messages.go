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

// Package abimsgs registers the i18n messages for operational errors - CLI
// argument parsing and value coercion - that sit outside the codec's own
// ParseError/EncodeError/DecodeError taxonomy (pkg/abi/errors.go), which
// carries its own literal, spec-pinned message text instead.
package abimsgs

import "github.com/hyperledger/firefly-common/pkg/i18n"

var ffe = i18n.FFE

//revive:disable
var (
	MsgInvalidNumberString      = ffe("FF23010", "Invalid number string: %s")
	MsgInvalidIntPrecisionLoss  = ffe("FF23011", "Number string cannot be converted to an integer without loss of precision: %s")
	MsgInvalidJSONTypeForBigInt = ffe("FF23012", "Cannot parse number from JSON value of type %T")
	MsgMissingSchema            = ffe("FF23013", "Missing required SCHEMA argument")
	MsgMissingValue             = ffe("FF23014", "Missing required VALUE argument")
	MsgInvalidHexInput          = ffe("FF23015", "Invalid hex input '%s': %s")
)
