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
	"bytes"
	"errors"
	"testing"
)

func TestEncodeRegisters(t *testing.T) {
	buf, err := EncodeRegisters([]uint16{0x006B, 0x0002, 0x0064})
	if err != nil {
		t.Fatalf("EncodeRegisters failed: %v", err)
	}

	expected := []byte{0x06, 0x00, 0x6B, 0x00, 0x02, 0x00, 0x64}
	if !bytes.Equal(buf, expected) {
		t.Errorf("Expected %x, got %x", expected, buf)
	}
}

func TestRegistersRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 3, 64, MaxBlockRegisters} {
		values := make([]uint16, n)
		for i := range values {
			values[i] = uint16(i * 257)
		}

		buf, err := EncodeRegisters(values)
		if err != nil {
			t.Fatalf("EncodeRegisters(%d) failed: %v", n, err)
		}
		decoded, err := DecodeRegisters(buf)
		if err != nil {
			t.Fatalf("DecodeRegisters(%d) failed: %v", n, err)
		}

		if len(decoded) != n {
			t.Fatalf("%d registers: decoded %d", n, len(decoded))
		}
		for i := range values {
			if decoded[i] != values[i] {
				t.Errorf("%d registers: register %d: expected 0x%04X, got 0x%04X", n, i, values[i], decoded[i])
			}
		}
	}
}

func TestEncodeRegisters_Overflow(t *testing.T) {
	_, err := EncodeRegisters(make([]uint16, MaxBlockRegisters+1))
	if !errors.Is(err, ErrBufferOverflow) {
		t.Errorf("Expected ErrBufferOverflow, got %v", err)
	}
}

func TestEncodeBytes(t *testing.T) {
	buf, err := EncodeBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	if err != nil {
		t.Fatalf("EncodeBytes failed: %v", err)
	}

	expected := []byte{0x04, 0xDE, 0xAD, 0xBE, 0xEF}
	if !bytes.Equal(buf, expected) {
		t.Errorf("Expected %x, got %x", expected, buf)
	}
}

func TestEncodeBytes_Overflow(t *testing.T) {
	_, err := EncodeBytes(make([]byte, MaxBlockBytes+1))
	if !errors.Is(err, ErrBufferOverflow) {
		t.Errorf("Expected ErrBufferOverflow, got %v", err)
	}
}

func TestEncodeBytesDecodesAsRegisters(t *testing.T) {
	buf, err := EncodeBytes([]byte{0x00, 0x6B, 0x00, 0x02})
	if err != nil {
		t.Fatalf("EncodeBytes failed: %v", err)
	}

	decoded, err := DecodeRegisters(buf)
	if err != nil {
		t.Fatalf("DecodeRegisters failed: %v", err)
	}
	expected := []uint16{0x006B, 0x0002}
	if len(decoded) != len(expected) {
		t.Fatalf("Expected %d registers, got %d", len(expected), len(decoded))
	}
	for i, v := range expected {
		if decoded[i] != v {
			t.Errorf("register %d: expected 0x%04X, got 0x%04X", i, v, decoded[i])
		}
	}
}

func TestDecodeRegisters_Empty(t *testing.T) {
	_, err := DecodeRegisters(nil)
	if !errors.Is(err, ErrTruncatedInput) {
		t.Errorf("Expected ErrTruncatedInput, got %v", err)
	}
}

func TestDecodeRegisters_ShortPayload(t *testing.T) {
	// Prefix declares 4 payload bytes but only 2 follow.
	_, err := DecodeRegisters([]byte{0x04, 0x00, 0x01})
	if !errors.Is(err, ErrTruncatedInput) {
		t.Errorf("Expected ErrTruncatedInput, got %v", err)
	}
}
