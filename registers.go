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

// EncodeRegisters packs an ordered sequence of 16-bit register values
// into a length-prefixed buffer: byte 0 holds 2x the register count,
// followed by the values big-endian, register 0 first. More than
// MaxBlockRegisters registers would overflow the single prefix byte and
// are rejected rather than silently truncated.
func EncodeRegisters(values []uint16) ([]byte, error) {
	if len(values) > MaxBlockRegisters {
		return nil, fmt.Errorf("%w: %d registers exceed the %d-register limit", ErrBufferOverflow, len(values), MaxBlockRegisters)
	}
	payload := Uint16sToBytes(values)
	buf := make([]byte, 1+len(payload))
	buf[0] = byte(len(payload))
	copy(buf[1:], payload)
	return buf, nil
}

// EncodeBytes packs a raw byte run into a length-prefixed buffer: byte 0
// holds the byte count, the bytes follow unchanged.
func EncodeBytes(data []byte) ([]byte, error) {
	if len(data) > MaxBlockBytes {
		return nil, fmt.Errorf("%w: %d bytes exceed the %d-byte limit", ErrBufferOverflow, len(data), MaxBlockBytes)
	}
	buf := make([]byte, 1+len(data))
	buf[0] = byte(len(data))
	copy(buf[1:], data)
	return buf, nil
}

// DecodeRegisters unpacks a length-prefixed register block. Byte 0 is
// read as 2x the register count; a buffer with fewer payload bytes than
// the prefix declares is a framing bug and fails loudly.
func DecodeRegisters(data []byte) ([]uint16, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: missing byte-count prefix", ErrTruncatedInput)
	}
	byteCount := int(data[0])
	if len(data) < 1+byteCount {
		return nil, fmt.Errorf("%w: block declares %d payload bytes, got %d", ErrTruncatedInput, byteCount, len(data)-1)
	}
	return BytesToUint16s(data[1 : 1+byteCount]), nil
}
