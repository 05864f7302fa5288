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

// DecodeOptions is the small, enumerated configuration object propagated to
// every recursive Decoder call (spec §4.5).
type DecodeOptions struct {
	// Checksum controls Address decoding: true emits the EIP-55 mixed-case
	// checksummed form, false emits lowercase 0x-prefixed hex.
	Checksum bool
}

// DefaultDecodeOptions returns the default options: checksummed addresses.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{Checksum: true}
}
