// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/xdvsf/xrpl4j/codec/serdes"
)

// toUint64 coerces the numeric shapes the JSON boundary produces and
// validates the value against [bits].
func toUint64(value any, bits int) (uint64, error) {
	var (
		v   uint64
		err error
	)
	switch n := value.(type) {
	case json.Number:
		v, err = strconv.ParseUint(n.String(), 10, bits)
	case string:
		v, err = strconv.ParseUint(n, 10, bits)
	case float64:
		if n < 0 || n != float64(uint64(n)) {
			return 0, fmt.Errorf("%w: %v is not an unsigned integer", ErrMalformedInput, n)
		}
		v = uint64(n)
		err = checkBits(v, bits)
	case int:
		if n < 0 {
			return 0, fmt.Errorf("%w: %d is negative", ErrMalformedInput, n)
		}
		v = uint64(n)
		err = checkBits(v, bits)
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("%w: %d is negative", ErrMalformedInput, n)
		}
		v = uint64(n)
		err = checkBits(v, bits)
	case uint64:
		v = n
		err = checkBits(v, bits)
	default:
		return 0, fmt.Errorf("%w: expected unsigned integer, got %T", ErrMalformedInput, value)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrMalformedInput, err)
	}
	return v, nil
}

func checkBits(v uint64, bits int) error {
	if bits < 64 && v >= 1<<bits {
		return fmt.Errorf("value %d overflows %d bits", v, bits)
	}
	return nil
}

// UInt8 is a 1 byte unsigned integer.
type UInt8 struct {
	value uint8
}

func (*UInt8) FromJSON(value any) (SerializedType, error) {
	v, err := toUint64(value, 8)
	if err != nil {
		return nil, err
	}
	return &UInt8{value: uint8(v)}, nil
}

func (*UInt8) FromParser(p *serdes.BinaryParser, _ int) (SerializedType, error) {
	b, err := p.ReadByte()
	if err != nil {
		return nil, err
	}
	return &UInt8{value: b}, nil
}

func (t *UInt8) ToJSON() any {
	return json.Number(strconv.FormatUint(uint64(t.value), 10))
}

func (t *UInt8) Bytes() []byte {
	return []byte{t.value}
}

// UInt16 is a 2 byte big-endian unsigned integer.
type UInt16 struct {
	value uint16
}

func (*UInt16) FromJSON(value any) (SerializedType, error) {
	v, err := toUint64(value, 16)
	if err != nil {
		return nil, err
	}
	return &UInt16{value: uint16(v)}, nil
}

func (*UInt16) FromParser(p *serdes.BinaryParser, _ int) (SerializedType, error) {
	b, err := p.ReadBytes(2)
	if err != nil {
		return nil, err
	}
	return &UInt16{value: binary.BigEndian.Uint16(b)}, nil
}

func (t *UInt16) ToJSON() any {
	return json.Number(strconv.FormatUint(uint64(t.value), 10))
}

func (t *UInt16) Bytes() []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, t.value)
	return b
}

// UInt32 is a 4 byte big-endian unsigned integer.
type UInt32 struct {
	value uint32
}

func (*UInt32) FromJSON(value any) (SerializedType, error) {
	v, err := toUint64(value, 32)
	if err != nil {
		return nil, err
	}
	return &UInt32{value: uint32(v)}, nil
}

func (*UInt32) FromParser(p *serdes.BinaryParser, _ int) (SerializedType, error) {
	b, err := p.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	return &UInt32{value: binary.BigEndian.Uint32(b)}, nil
}

func (t *UInt32) ToJSON() any {
	return json.Number(strconv.FormatUint(uint64(t.value), 10))
}

func (t *UInt32) Bytes() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, t.value)
	return b
}

// UInt64 is an 8 byte big-endian unsigned integer. On the JSON side it is
// conventionally a 16 character hex string, since such values exceed what
// JSON numbers represent faithfully; decimal numbers are accepted inbound.
type UInt64 struct {
	value uint64
}

func (*UInt64) FromJSON(value any) (SerializedType, error) {
	if s, ok := value.(string); ok {
		v, err := strconv.ParseUint(s, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a hex encoded uint64", ErrMalformedInput, s)
		}
		return &UInt64{value: v}, nil
	}
	v, err := toUint64(value, 64)
	if err != nil {
		return nil, err
	}
	return &UInt64{value: v}, nil
}

func (*UInt64) FromParser(p *serdes.BinaryParser, _ int) (SerializedType, error) {
	b, err := p.ReadBytes(8)
	if err != nil {
		return nil, err
	}
	return &UInt64{value: binary.BigEndian.Uint64(b)}, nil
}

func (t *UInt64) ToJSON() any {
	return strings.ToUpper(hex.EncodeToString(t.Bytes()))
}

func (t *UInt64) Bytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, t.value)
	return b
}
