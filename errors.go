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
	"errors"
	"fmt"
)

// ExceptionCode represents a Modbus exception code.
type ExceptionCode uint8

// Modbus exception codes.
const (
	ExceptionIllegalFunction                    ExceptionCode = 0x01
	ExceptionIllegalDataAddress                 ExceptionCode = 0x02
	ExceptionIllegalDataValue                   ExceptionCode = 0x03
	ExceptionServerDeviceFailure                ExceptionCode = 0x04
	ExceptionAcknowledge                        ExceptionCode = 0x05
	ExceptionServerDeviceBusy                   ExceptionCode = 0x06
	ExceptionMemoryParityError                  ExceptionCode = 0x08
	ExceptionGatewayPathUnavailable             ExceptionCode = 0x0A
	ExceptionGatewayTargetDeviceFailedToRespond ExceptionCode = 0x0B
)

// String returns the string representation of the exception code.
func (e ExceptionCode) String() string {
	switch e {
	case ExceptionIllegalFunction:
		return "illegal function"
	case ExceptionIllegalDataAddress:
		return "illegal data address"
	case ExceptionIllegalDataValue:
		return "illegal data value"
	case ExceptionServerDeviceFailure:
		return "server device failure"
	case ExceptionAcknowledge:
		return "acknowledge"
	case ExceptionServerDeviceBusy:
		return "server device busy"
	case ExceptionMemoryParityError:
		return "memory parity error"
	case ExceptionGatewayPathUnavailable:
		return "gateway path unavailable"
	case ExceptionGatewayTargetDeviceFailedToRespond:
		return "gateway target device failed to respond"
	default:
		return fmt.Sprintf("unknown exception (0x%02X)", uint8(e))
	}
}

// ExceptionName returns the canonical name of the exception code, or an
// empty string for codes outside the enumeration. An unknown code is an
// expected condition for the caller to handle, not an error.
func ExceptionName(e ExceptionCode) string {
	switch e {
	case ExceptionIllegalFunction:
		return "IllegalFunction"
	case ExceptionIllegalDataAddress:
		return "IllegalDataAddress"
	case ExceptionIllegalDataValue:
		return "IllegalDataValue"
	case ExceptionServerDeviceFailure:
		return "ServerDeviceFailure"
	case ExceptionAcknowledge:
		return "Acknowledge"
	case ExceptionServerDeviceBusy:
		return "ServerDeviceBusy"
	case ExceptionMemoryParityError:
		return "MemoryParityError"
	case ExceptionGatewayPathUnavailable:
		return "GatewayPathUnavailable"
	case ExceptionGatewayTargetDeviceFailedToRespond:
		return "GatewayTargetDeviceFailedToRespond"
	default:
		return ""
	}
}

// exceptionsByName is the reverse of ExceptionName. Built once, never
// mutated.
var exceptionsByName = map[string]ExceptionCode{
	"IllegalFunction":                    ExceptionIllegalFunction,
	"IllegalDataAddress":                 ExceptionIllegalDataAddress,
	"IllegalDataValue":                   ExceptionIllegalDataValue,
	"ServerDeviceFailure":                ExceptionServerDeviceFailure,
	"Acknowledge":                        ExceptionAcknowledge,
	"ServerDeviceBusy":                   ExceptionServerDeviceBusy,
	"MemoryParityError":                  ExceptionMemoryParityError,
	"GatewayPathUnavailable":             ExceptionGatewayPathUnavailable,
	"GatewayTargetDeviceFailedToRespond": ExceptionGatewayTargetDeviceFailedToRespond,
}

// ExceptionByName returns the exception code with the given canonical
// name. Producers use it to raise a typed exception condition by name.
func ExceptionByName(name string) (ExceptionCode, bool) {
	e, ok := exceptionsByName[name]
	return e, ok
}

// ModbusError represents a Modbus protocol error (exception frame). It
// carries the structured function and exception codes directly rather
// than encoding them into the message string.
type ModbusError struct {
	FunctionCode  FunctionCode
	ExceptionCode ExceptionCode
}

// Error implements the error interface.
func (e *ModbusError) Error() string {
	return fmt.Sprintf("modbus: exception %s (FC=%02X)", e.ExceptionCode, e.FunctionCode)
}

// Is checks if the error matches the target.
func (e *ModbusError) Is(target error) bool {
	t, ok := target.(*ModbusError)
	if !ok {
		return false
	}
	return e.ExceptionCode == t.ExceptionCode
}

// NewModbusError creates a new Modbus exception error.
func NewModbusError(fc FunctionCode, ec ExceptionCode) *ModbusError {
	return &ModbusError{
		FunctionCode:  fc,
		ExceptionCode: ec,
	}
}

// Codec errors.
var (
	// ErrTruncatedInput indicates a decoder received fewer bytes than its
	// fixed-width field requires. This points at a framing bug in the
	// transport layer and is never silently padded over.
	ErrTruncatedInput = errors.New("modbus: truncated input")

	// ErrBufferOverflow indicates an encode input exceeds what a single
	// length-prefix byte can address.
	ErrBufferOverflow = errors.New("modbus: buffer overflow")
)

// IsException checks if an error is a specific Modbus exception.
func IsException(err error, code ExceptionCode) bool {
	var modbusErr *ModbusError
	if errors.As(err, &modbusErr) {
		return modbusErr.ExceptionCode == code
	}
	return false
}

// IsIllegalFunction checks if the error is an illegal function exception.
func IsIllegalFunction(err error) bool {
	return IsException(err, ExceptionIllegalFunction)
}

// IsIllegalDataAddress checks if the error is an illegal data address exception.
func IsIllegalDataAddress(err error) bool {
	return IsException(err, ExceptionIllegalDataAddress)
}

// IsIllegalDataValue checks if the error is an illegal data value exception.
func IsIllegalDataValue(err error) bool {
	return IsException(err, ExceptionIllegalDataValue)
}

// IsServerDeviceFailure checks if the error is a server device failure exception.
func IsServerDeviceFailure(err error) bool {
	return IsException(err, ExceptionServerDeviceFailure)
}
