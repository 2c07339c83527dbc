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

// EncodeException encodes an exception frame: the function code with its
// high bit set, followed by the exception code.
func EncodeException(fc FunctionCode, ec ExceptionCode) []byte {
	return []byte{byte(fc) | ExceptionFlag, byte(ec)}
}

// ParseException decodes an exception frame into a ModbusError carrying
// both codes. The high bit is masked off the function code byte.
func ParseException(pdu []byte) (*ModbusError, error) {
	if len(pdu) < 2 {
		return nil, fmt.Errorf("%w: exception frame needs 2 bytes, got %d", ErrTruncatedInput, len(pdu))
	}
	return NewModbusError(FunctionCode(pdu[0]&^byte(ExceptionFlag)), ExceptionCode(pdu[1])), nil
}

// IsExceptionFrame reports whether the PDU is an exception frame.
func IsExceptionFrame(pdu []byte) bool {
	return len(pdu) > 0 && (pdu[0]&ExceptionFlag) != 0
}
