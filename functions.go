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

// encodePDU prefixes the function code byte to a payload.
func encodePDU(fc FunctionCode, payload []byte) []byte {
	pdu := make([]byte, 1+len(payload))
	pdu[0] = byte(fc)
	copy(pdu[1:], payload)
	return pdu
}

// coilBytes returns the 2-byte wire value for a single-coil write.
func coilBytes(on bool) [2]byte {
	if on {
		return [2]byte{byte(CoilOn >> 8), byte(CoilOn & 0xFF)}
	}
	return [2]byte{byte(CoilOff >> 8), byte(CoilOff)}
}

// ReadCoilsRequest represents a request to read coils (FC01).
type ReadCoilsRequest struct {
	reqPDU
	Address  uint16
	Quantity uint16
}

// NewReadCoilsRange builds a ReadCoilsRequest covering the inclusive
// address range [start, end].
func NewReadCoilsRange(start, end uint16) *ReadCoilsRequest {
	return &ReadCoilsRequest{Address: start, Quantity: rangeQuantity(start, end)}
}

func (r *ReadCoilsRequest) FunctionCode() FunctionCode {
	return FuncReadCoils
}

func (r *ReadCoilsRequest) Encode() ([]byte, error) {
	return encodePDU(FuncReadCoils, EncodeAddressQuantity(r.Address, r.Quantity)), nil
}

func decodeReadCoilsRequest(payload []byte) (Request, error) {
	addr, qty, err := DecodeAddressQuantity(payload)
	if err != nil {
		return nil, err
	}
	return &ReadCoilsRequest{Address: addr, Quantity: qty}, nil
}

// ReadCoilsResponse represents a response to read coils. Values decoded
// from the wire are padded to a multiple of 8; callers slice to the
// quantity they requested.
type ReadCoilsResponse struct {
	respPDU
	Values []bool
}

func (r *ReadCoilsResponse) FunctionCode() FunctionCode {
	return FuncReadCoils
}

func (r *ReadCoilsResponse) Encode() ([]byte, error) {
	payload, err := EncodeBits(r.Values)
	if err != nil {
		return nil, err
	}
	return encodePDU(FuncReadCoils, payload), nil
}

func decodeReadCoilsResponse(payload []byte) (Response, error) {
	values, err := DecodeBits(payload)
	if err != nil {
		return nil, err
	}
	return &ReadCoilsResponse{Values: values}, nil
}

// ReadDiscreteInputsRequest represents a request to read discrete inputs (FC02).
type ReadDiscreteInputsRequest struct {
	reqPDU
	Address  uint16
	Quantity uint16
}

// NewReadDiscreteInputsRange builds a ReadDiscreteInputsRequest covering
// the inclusive address range [start, end].
func NewReadDiscreteInputsRange(start, end uint16) *ReadDiscreteInputsRequest {
	return &ReadDiscreteInputsRequest{Address: start, Quantity: rangeQuantity(start, end)}
}

func (r *ReadDiscreteInputsRequest) FunctionCode() FunctionCode {
	return FuncReadDiscreteInputs
}

func (r *ReadDiscreteInputsRequest) Encode() ([]byte, error) {
	return encodePDU(FuncReadDiscreteInputs, EncodeAddressQuantity(r.Address, r.Quantity)), nil
}

func decodeReadDiscreteInputsRequest(payload []byte) (Request, error) {
	addr, qty, err := DecodeAddressQuantity(payload)
	if err != nil {
		return nil, err
	}
	return &ReadDiscreteInputsRequest{Address: addr, Quantity: qty}, nil
}

// ReadDiscreteInputsResponse represents a response to read discrete inputs.
type ReadDiscreteInputsResponse struct {
	respPDU
	Values []bool
}

func (r *ReadDiscreteInputsResponse) FunctionCode() FunctionCode {
	return FuncReadDiscreteInputs
}

func (r *ReadDiscreteInputsResponse) Encode() ([]byte, error) {
	payload, err := EncodeBits(r.Values)
	if err != nil {
		return nil, err
	}
	return encodePDU(FuncReadDiscreteInputs, payload), nil
}

func decodeReadDiscreteInputsResponse(payload []byte) (Response, error) {
	values, err := DecodeBits(payload)
	if err != nil {
		return nil, err
	}
	return &ReadDiscreteInputsResponse{Values: values}, nil
}

// ReadHoldingRegistersRequest represents a request to read holding registers (FC03).
type ReadHoldingRegistersRequest struct {
	reqPDU
	Address  uint16
	Quantity uint16
}

// NewReadHoldingRegistersRange builds a ReadHoldingRegistersRequest
// covering the inclusive address range [start, end].
func NewReadHoldingRegistersRange(start, end uint16) *ReadHoldingRegistersRequest {
	return &ReadHoldingRegistersRequest{Address: start, Quantity: rangeQuantity(start, end)}
}

func (r *ReadHoldingRegistersRequest) FunctionCode() FunctionCode {
	return FuncReadHoldingRegisters
}

func (r *ReadHoldingRegistersRequest) Encode() ([]byte, error) {
	return encodePDU(FuncReadHoldingRegisters, EncodeAddressQuantity(r.Address, r.Quantity)), nil
}

func decodeReadHoldingRegistersRequest(payload []byte) (Request, error) {
	addr, qty, err := DecodeAddressQuantity(payload)
	if err != nil {
		return nil, err
	}
	return &ReadHoldingRegistersRequest{Address: addr, Quantity: qty}, nil
}

// ReadHoldingRegistersResponse represents a response to read holding registers.
type ReadHoldingRegistersResponse struct {
	respPDU
	Values []uint16
}

func (r *ReadHoldingRegistersResponse) FunctionCode() FunctionCode {
	return FuncReadHoldingRegisters
}

func (r *ReadHoldingRegistersResponse) Encode() ([]byte, error) {
	payload, err := EncodeRegisters(r.Values)
	if err != nil {
		return nil, err
	}
	return encodePDU(FuncReadHoldingRegisters, payload), nil
}

func decodeReadHoldingRegistersResponse(payload []byte) (Response, error) {
	values, err := DecodeRegisters(payload)
	if err != nil {
		return nil, err
	}
	return &ReadHoldingRegistersResponse{Values: values}, nil
}

// ReadInputRegistersRequest represents a request to read input registers (FC04).
type ReadInputRegistersRequest struct {
	reqPDU
	Address  uint16
	Quantity uint16
}

// NewReadInputRegistersRange builds a ReadInputRegistersRequest covering
// the inclusive address range [start, end].
func NewReadInputRegistersRange(start, end uint16) *ReadInputRegistersRequest {
	return &ReadInputRegistersRequest{Address: start, Quantity: rangeQuantity(start, end)}
}

func (r *ReadInputRegistersRequest) FunctionCode() FunctionCode {
	return FuncReadInputRegisters
}

func (r *ReadInputRegistersRequest) Encode() ([]byte, error) {
	return encodePDU(FuncReadInputRegisters, EncodeAddressQuantity(r.Address, r.Quantity)), nil
}

func decodeReadInputRegistersRequest(payload []byte) (Request, error) {
	addr, qty, err := DecodeAddressQuantity(payload)
	if err != nil {
		return nil, err
	}
	return &ReadInputRegistersRequest{Address: addr, Quantity: qty}, nil
}

// ReadInputRegistersResponse represents a response to read input registers.
type ReadInputRegistersResponse struct {
	respPDU
	Values []uint16
}

func (r *ReadInputRegistersResponse) FunctionCode() FunctionCode {
	return FuncReadInputRegisters
}

func (r *ReadInputRegistersResponse) Encode() ([]byte, error) {
	payload, err := EncodeRegisters(r.Values)
	if err != nil {
		return nil, err
	}
	return encodePDU(FuncReadInputRegisters, payload), nil
}

func decodeReadInputRegistersResponse(payload []byte) (Response, error) {
	values, err := DecodeRegisters(payload)
	if err != nil {
		return nil, err
	}
	return &ReadInputRegistersResponse{Values: values}, nil
}

// WriteSingleCoilRequest represents a request to write a single coil (FC05).
type WriteSingleCoilRequest struct {
	reqPDU
	Address uint16
	Value   bool
}

func (r *WriteSingleCoilRequest) FunctionCode() FunctionCode {
	return FuncWriteSingleCoil
}

func (r *WriteSingleCoilRequest) Encode() ([]byte, error) {
	return encodePDU(FuncWriteSingleCoil, EncodeAddressValue(r.Address, coilBytes(r.Value))), nil
}

func decodeWriteSingleCoilRequest(payload []byte) (Request, error) {
	addr, value, err := DecodeAddressValue(payload)
	if err != nil {
		return nil, err
	}
	return &WriteSingleCoilRequest{Address: addr, Value: isCoilOn(value)}, nil
}

// WriteSingleCoilResponse echoes a single coil write.
type WriteSingleCoilResponse struct {
	respPDU
	Address uint16
	Value   bool
}

func (r *WriteSingleCoilResponse) FunctionCode() FunctionCode {
	return FuncWriteSingleCoil
}

func (r *WriteSingleCoilResponse) Encode() ([]byte, error) {
	return encodePDU(FuncWriteSingleCoil, EncodeAddressValue(r.Address, coilBytes(r.Value))), nil
}

func decodeWriteSingleCoilResponse(payload []byte) (Response, error) {
	addr, value, err := DecodeAddressValue(payload)
	if err != nil {
		return nil, err
	}
	return &WriteSingleCoilResponse{Address: addr, Value: isCoilOn(value)}, nil
}

// isCoilOn interprets the 2-byte coil value. Only 0xFF00 means on; other
// values are not rejected on decode, they read as off.
func isCoilOn(value [2]byte) bool {
	return binary.BigEndian.Uint16(value[:]) == CoilOn
}

// WriteSingleRegisterRequest represents a request to write a single register (FC06).
type WriteSingleRegisterRequest struct {
	reqPDU
	Address uint16
	Value   uint16
}

func (r *WriteSingleRegisterRequest) FunctionCode() FunctionCode {
	return FuncWriteSingleRegister
}

func (r *WriteSingleRegisterRequest) Encode() ([]byte, error) {
	var value [2]byte
	binary.BigEndian.PutUint16(value[:], r.Value)
	return encodePDU(FuncWriteSingleRegister, EncodeAddressValue(r.Address, value)), nil
}

func decodeWriteSingleRegisterRequest(payload []byte) (Request, error) {
	addr, value, err := DecodeAddressValue(payload)
	if err != nil {
		return nil, err
	}
	return &WriteSingleRegisterRequest{Address: addr, Value: binary.BigEndian.Uint16(value[:])}, nil
}

// WriteSingleRegisterResponse echoes a single register write.
type WriteSingleRegisterResponse struct {
	respPDU
	Address uint16
	Value   uint16
}

func (r *WriteSingleRegisterResponse) FunctionCode() FunctionCode {
	return FuncWriteSingleRegister
}

func (r *WriteSingleRegisterResponse) Encode() ([]byte, error) {
	var value [2]byte
	binary.BigEndian.PutUint16(value[:], r.Value)
	return encodePDU(FuncWriteSingleRegister, EncodeAddressValue(r.Address, value)), nil
}

func decodeWriteSingleRegisterResponse(payload []byte) (Response, error) {
	addr, value, err := DecodeAddressValue(payload)
	if err != nil {
		return nil, err
	}
	return &WriteSingleRegisterResponse{Address: addr, Value: binary.BigEndian.Uint16(value[:])}, nil
}

// ReadExceptionStatusRequest represents a request to read exception status (FC07).
// Its payload is empty.
type ReadExceptionStatusRequest struct {
	reqPDU
}

func (r *ReadExceptionStatusRequest) FunctionCode() FunctionCode {
	return FuncReadExceptionStatus
}

func (r *ReadExceptionStatusRequest) Encode() ([]byte, error) {
	return []byte{byte(FuncReadExceptionStatus)}, nil
}

func decodeReadExceptionStatusRequest(payload []byte) (Request, error) {
	return &ReadExceptionStatusRequest{}, nil
}

// ReadExceptionStatusResponse represents a response to read exception status.
type ReadExceptionStatusResponse struct {
	respPDU
	Status uint8
}

func (r *ReadExceptionStatusResponse) FunctionCode() FunctionCode {
	return FuncReadExceptionStatus
}

func (r *ReadExceptionStatusResponse) Encode() ([]byte, error) {
	return []byte{byte(FuncReadExceptionStatus), r.Status}, nil
}

func decodeReadExceptionStatusResponse(payload []byte) (Response, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("%w: exception status needs 1 byte", ErrTruncatedInput)
	}
	return &ReadExceptionStatusResponse{Status: payload[0]}, nil
}
