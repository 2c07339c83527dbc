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

// entry binds a function code to its canonical name and the parsers for
// its request and response payloads. The payload parsers receive the PDU
// with the function code byte already stripped.
type entry struct {
	code          FunctionCode
	name          string
	parseRequest  func(payload []byte) (Request, error)
	parseResponse func(payload []byte) (Response, error)
}

// Codec dispatches raw PDU buffers to the parsers for their function code.
// The table is fixed at construction and never mutated, so a single Codec
// is safe for concurrent use without coordination.
type Codec struct {
	table  [ExceptionFlag]*entry // indexed by function code
	byName map[string]*entry
}

// NewCodec builds the codec for the supported function set.
func NewCodec() *Codec {
	c := &Codec{byName: make(map[string]*entry)}
	for _, e := range []*entry{
		{code: FuncReadCoils, parseRequest: decodeReadCoilsRequest, parseResponse: decodeReadCoilsResponse},
		{code: FuncReadDiscreteInputs, parseRequest: decodeReadDiscreteInputsRequest, parseResponse: decodeReadDiscreteInputsResponse},
		{code: FuncReadHoldingRegisters, parseRequest: decodeReadHoldingRegistersRequest, parseResponse: decodeReadHoldingRegistersResponse},
		{code: FuncReadInputRegisters, parseRequest: decodeReadInputRegistersRequest, parseResponse: decodeReadInputRegistersResponse},
		{code: FuncWriteSingleCoil, parseRequest: decodeWriteSingleCoilRequest, parseResponse: decodeWriteSingleCoilResponse},
		{code: FuncWriteSingleRegister, parseRequest: decodeWriteSingleRegisterRequest, parseResponse: decodeWriteSingleRegisterResponse},
		{code: FuncReadExceptionStatus, parseRequest: decodeReadExceptionStatusRequest, parseResponse: decodeReadExceptionStatusResponse},
	} {
		e.name = functionName(e.code)
		c.table[e.code] = e
		c.byName[e.name] = e
	}
	return c
}

func (c *Codec) lookup(fc FunctionCode) *entry {
	if fc < ExceptionFlag {
		return c.table[fc]
	}
	return nil
}

// ParseRequest decodes a raw request PDU into its typed request. An
// unsupported function code is not an error: the raw code and payload
// come back as a *RawRequest for the caller to pass through or log.
func (c *Codec) ParseRequest(pdu []byte) (Request, error) {
	if len(pdu) == 0 {
		return nil, fmt.Errorf("%w: empty PDU", ErrTruncatedInput)
	}
	fc := FunctionCode(pdu[0])
	if e := c.lookup(fc); e != nil {
		return e.parseRequest(pdu[1:])
	}
	return &RawRequest{Code: fc, Data: clonePayload(pdu)}, nil
}

// ParseResponse decodes a raw response PDU into its typed response. An
// exception frame returns a nil response and a *ModbusError carrying the
// function and exception codes. Unsupported function codes come back as a
// *RawResponse, as in ParseRequest.
func (c *Codec) ParseResponse(pdu []byte) (Response, error) {
	if len(pdu) == 0 {
		return nil, fmt.Errorf("%w: empty PDU", ErrTruncatedInput)
	}
	if IsExceptionFrame(pdu) {
		me, err := ParseException(pdu)
		if err != nil {
			return nil, err
		}
		return nil, me
	}
	fc := FunctionCode(pdu[0])
	if e := c.lookup(fc); e != nil {
		return e.parseResponse(pdu[1:])
	}
	return &RawResponse{Code: fc, Data: clonePayload(pdu)}, nil
}

// BuildExceptionResponse encodes an exception frame for the named
// function. It fails only when the name is not in the supported set.
func (c *Codec) BuildExceptionResponse(name string, ec ExceptionCode) ([]byte, error) {
	e, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("modbus: unknown function name %q", name)
	}
	return EncodeException(e.code, ec), nil
}

// FunctionName returns the canonical name for a supported function code,
// or an empty string. An unknown code is an expected condition for the
// caller to handle, not an error.
func (c *Codec) FunctionName(fc FunctionCode) string {
	if e := c.lookup(fc); e != nil {
		return e.name
	}
	return ""
}

// FunctionByName returns the function code with the given canonical name.
func (c *Codec) FunctionByName(name string) (FunctionCode, bool) {
	e, ok := c.byName[name]
	if !ok {
		return 0, false
	}
	return e.code, true
}

// DecodeException decodes an exception frame into human-readable names.
// Unknown function or exception codes yield empty strings rather than an
// error, so a malformed frame and an unknown code stay distinguishable.
func (c *Codec) DecodeException(pdu []byte) (functionName, exceptionName string, err error) {
	me, err := ParseException(pdu)
	if err != nil {
		return "", "", err
	}
	return c.FunctionName(me.FunctionCode), ExceptionName(me.ExceptionCode), nil
}

// RawRequest carries a request with a function code outside the supported
// set: the raw code plus the unparsed payload bytes.
type RawRequest struct {
	reqPDU
	Code FunctionCode
	Data []byte
}

func (r *RawRequest) FunctionCode() FunctionCode {
	return r.Code
}

func (r *RawRequest) Encode() ([]byte, error) {
	return encodePDU(r.Code, r.Data), nil
}

// RawResponse carries a response with a function code outside the
// supported set.
type RawResponse struct {
	respPDU
	Code FunctionCode
	Data []byte
}

func (r *RawResponse) FunctionCode() FunctionCode {
	return r.Code
}

func (r *RawResponse) Encode() ([]byte, error) {
	return encodePDU(r.Code, r.Data), nil
}

func clonePayload(pdu []byte) []byte {
	data := make([]byte, len(pdu)-1)
	copy(data, pdu[1:])
	return data
}

// defaultCodec backs the package-level functions. It is built once and
// never mutated.
var defaultCodec = NewCodec()

// ParseRequest decodes a request PDU with the default codec.
func ParseRequest(pdu []byte) (Request, error) {
	return defaultCodec.ParseRequest(pdu)
}

// ParseResponse decodes a response PDU with the default codec.
func ParseResponse(pdu []byte) (Response, error) {
	return defaultCodec.ParseResponse(pdu)
}

// FunctionName returns the canonical name for a supported function code,
// or an empty string.
func FunctionName(fc FunctionCode) string {
	return defaultCodec.FunctionName(fc)
}

// FunctionByName returns the function code with the given canonical name.
func FunctionByName(name string) (FunctionCode, bool) {
	return defaultCodec.FunctionByName(name)
}
