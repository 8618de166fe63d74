// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serdes

import (
	"fmt"

	"github.com/xdvsf/xrpl4j/codec/definitions"
)

// EncodeFieldHeader packs (typeCode, fieldCode) into a 1-3 byte header.
// Codes below 16 share a single byte, one nibble each; larger codes spill
// into the following byte(s).
func EncodeFieldHeader(header definitions.FieldHeader) ([]byte, error) {
	typeCode, fieldCode := header.TypeCode, header.FieldCode
	if typeCode < 1 || typeCode > 255 || fieldCode < 1 || fieldCode > 255 {
		return nil, fmt.Errorf("%w: field header codes (%d, %d) out of range",
			ErrInvalidEncoding, typeCode, fieldCode)
	}

	switch {
	case typeCode < 16 && fieldCode < 16:
		return []byte{byte(typeCode<<4 | fieldCode)}, nil
	case typeCode < 16:
		return []byte{byte(typeCode << 4), byte(fieldCode)}, nil
	case fieldCode < 16:
		return []byte{byte(fieldCode), byte(typeCode)}, nil
	default:
		return []byte{0, byte(typeCode), byte(fieldCode)}, nil
	}
}

// ReadFieldHeader reads a 1-3 byte field header from the parser.
func (p *BinaryParser) ReadFieldHeader() (definitions.FieldHeader, error) {
	b, err := p.ReadByte()
	if err != nil {
		return definitions.FieldHeader{}, err
	}

	typeCode := int32(b >> 4)
	fieldCode := int32(b & 0x0F)

	if typeCode == 0 {
		next, err := p.ReadByte()
		if err != nil {
			return definitions.FieldHeader{}, err
		}
		typeCode = int32(next)
		if typeCode < 16 {
			return definitions.FieldHeader{}, fmt.Errorf("%w: spilled type code %d below 16",
				ErrInvalidEncoding, typeCode)
		}
	}
	if fieldCode == 0 {
		next, err := p.ReadByte()
		if err != nil {
			return definitions.FieldHeader{}, err
		}
		fieldCode = int32(next)
		if fieldCode < 16 {
			return definitions.FieldHeader{}, fmt.Errorf("%w: spilled field code %d below 16",
				ErrInvalidEncoding, fieldCode)
		}
	}

	return definitions.FieldHeader{TypeCode: typeCode, FieldCode: fieldCode}, nil
}

// ReadField reads a field header and resolves it against the registry.
// A header that resolves to no registry entry fails with ErrUnknownField;
// the protocol is closed, so there is no passthrough for unknown fields.
func (p *BinaryParser) ReadField() (definitions.FieldInstance, error) {
	header, err := p.ReadFieldHeader()
	if err != nil {
		return definitions.FieldInstance{}, err
	}
	f, ok := definitions.Get().FieldByHeader(header)
	if !ok {
		return definitions.FieldInstance{}, fmt.Errorf("%w: no field for header (%d, %d)",
			ErrUnknownField, header.TypeCode, header.FieldCode)
	}
	return f, nil
}
