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

// Package modbus implements the Modbus PDU codec: it encodes structured
// requests and responses into their exact wire byte sequences and decodes
// raw PDU buffers back into structured values. It owns no transport,
// framing, or session state; callers hand it already-delimited PDUs.
package modbus

import "fmt"

// FunctionCode represents a Modbus function code.
type FunctionCode uint8

// Supported Modbus function codes.
const (
	FuncReadCoils            FunctionCode = 0x01
	FuncReadDiscreteInputs   FunctionCode = 0x02
	FuncReadHoldingRegisters FunctionCode = 0x03
	FuncReadInputRegisters   FunctionCode = 0x04
	FuncWriteSingleCoil      FunctionCode = 0x05
	FuncWriteSingleRegister  FunctionCode = 0x06
	FuncReadExceptionStatus  FunctionCode = 0x07
)

// Wire format constants.
const (
	// ExceptionFlag is OR'd into the function code byte of an exception
	// frame. Normal function codes stay below it.
	ExceptionFlag = 0x80

	// MaxBitFieldBits is the largest bit sequence a single length-prefix
	// byte can address (255 payload bytes of 8 bits each).
	MaxBitFieldBits = 2040

	// MaxBlockBytes is the largest raw byte run a register block's
	// length-prefix byte can address.
	MaxBlockBytes = 255

	// MaxBlockRegisters is the largest number of whole 16-bit registers
	// that fit under MaxBlockBytes.
	MaxBlockRegisters = 127
)

// Coil values for single-coil write operations.
const (
	CoilOn  uint16 = 0xFF00
	CoilOff uint16 = 0x0000
)

// String returns the canonical name of the function code, or a hex
// placeholder for codes outside the supported set.
func (f FunctionCode) String() string {
	if name := functionName(f); name != "" {
		return name
	}
	return fmt.Sprintf("unknown function (0x%02X)", uint8(f))
}

func functionName(f FunctionCode) string {
	switch f {
	case FuncReadCoils:
		return "ReadCoils"
	case FuncReadDiscreteInputs:
		return "ReadDiscreteInputs"
	case FuncReadHoldingRegisters:
		return "ReadHoldingRegisters"
	case FuncReadInputRegisters:
		return "ReadInputRegisters"
	case FuncWriteSingleCoil:
		return "WriteSingleCoil"
	case FuncWriteSingleRegister:
		return "WriteSingleRegister"
	case FuncReadExceptionStatus:
		return "ReadExceptionStatus"
	default:
		return ""
	}
}

// Request is a decoded Modbus request PDU. Every concrete request type
// also encodes itself, so parsing a built request and re-encoding it is a
// fixed point.
type Request interface {
	FunctionCode() FunctionCode
	Encode() ([]byte, error)
	request()
}

// Response is a decoded Modbus response PDU.
type Response interface {
	FunctionCode() FunctionCode
	Encode() ([]byte, error)
	response()
}

// Marker types embedded by the concrete PDU types to tag them as requests
// or responses.
type reqPDU struct{}

func (reqPDU) request() {}

type respPDU struct{}

func (respPDU) response() {}
