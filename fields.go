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

import (
	"encoding/binary"
	"fmt"
)

// Fixed-width field helpers. These are the recurring 4-byte payload
// shapes shared by the supported function codes; all multi-byte fields
// are big-endian.

// EncodeAddressQuantity encodes an address/quantity pair into 4 bytes.
func EncodeAddressQuantity(address, quantity uint16) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint16(buf[0:2], address)
	binary.BigEndian.PutUint16(buf[2:4], quantity)
	return buf
}

// DecodeAddressQuantity decodes an address/quantity pair.
func DecodeAddressQuantity(data []byte) (address, quantity uint16, err error) {
	if len(data) < 4 {
		return 0, 0, fmt.Errorf("%w: address/quantity needs 4 bytes, got %d", ErrTruncatedInput, len(data))
	}
	return binary.BigEndian.Uint16(data[0:2]), binary.BigEndian.Uint16(data[2:4]), nil
}

// EncodeAddressRange encodes an inclusive [start, end] address range into
// 4 bytes, stored on the wire as start followed by end-start+1. The
// caller must ensure end >= start; the count field simply wraps if it
// does not.
func EncodeAddressRange(start, end uint16) []byte {
	return EncodeAddressQuantity(start, rangeQuantity(start, end))
}

// DecodeAddressRange decodes a start/count pair back into the inclusive
// [start, end] range it was encoded from.
func DecodeAddressRange(data []byte) (start, end uint16, err error) {
	start, count, err := DecodeAddressQuantity(data)
	if err != nil {
		return 0, 0, err
	}
	return start, start + count - 1, nil
}

func rangeQuantity(start, end uint16) uint16 {
	return end - start + 1
}

// EncodeAddressValue encodes an address and a 2-byte value into 4 bytes.
func EncodeAddressValue(address uint16, value [2]byte) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint16(buf[0:2], address)
	buf[2] = value[0]
	buf[3] = value[1]
	return buf
}

// DecodeAddressValue decodes an address/value pair. The value is returned
// as raw bytes, not interpreted: single-coil and single-register writes
// read those two bytes differently.
func DecodeAddressValue(data []byte) (address uint16, value [2]byte, err error) {
	if len(data) < 4 {
		return 0, value, fmt.Errorf("%w: address/value needs 4 bytes, got %d", ErrTruncatedInput, len(data))
	}
	return binary.BigEndian.Uint16(data[0:2]), [2]byte{data[2], data[3]}, nil
}
