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

// Package abi is a bidirectional codec for the Ethereum contract ABIv2 wire
// format. Given a schema string such as "uint256", "(bytes32,ufixed128x10)",
// or "string[][3]", Parse builds a Type tree; Encode/Decode then convert
// between Go values and canonical ABIv2 bytes against that tree.
//
// The package is pure and stateless: Type trees are immutable once built,
// and every exported function is safe to call concurrently from multiple
// goroutines without external synchronization.
package abi
