// Copyright 2025 Edgeo SCADA
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

package modbus

import "fmt"

// EncodeBits packs an ordered bit sequence into a length-prefixed,
// byte-aligned buffer: byte 0 holds the payload byte count, bits are
// packed LSB-first within each payload byte in input order, and unused
// high bits of the final byte are zero. Sequences longer than
// MaxBitFieldBits are rejected before any allocation.
func EncodeBits(values []bool) ([]byte, error) {
	if len(values) > MaxBitFieldBits {
		return nil, fmt.Errorf("%w: %d bits exceed the %d-bit limit", ErrBufferOverflow, len(values), MaxBitFieldBits)
	}
	payload := BoolsToBytes(values)
	buf := make([]byte, 1+len(payload))
	buf[0] = byte(len(payload))
	copy(buf[1:], payload)
	return buf, nil
}

// DecodeBits unpacks a length-prefixed bit field. Byte 0 is read as the
// payload byte count; a shorter buffer clamps to the bytes actually
// present. The returned length is always a multiple of 8: the prefix
// records payload bytes, not the original bit count, so trailing padding
// bits come back as false.
func DecodeBits(data []byte) ([]bool, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: missing byte-count prefix", ErrTruncatedInput)
	}
	n := int(data[0])
	if avail := len(data) - 1; n > avail {
		n = avail
	}
	return BytesToBools(data[1:1+n], n*8), nil
}
