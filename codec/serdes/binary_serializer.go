// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serdes

import (
	"encoding/hex"
	"strings"

	"github.com/xdvsf/xrpl4j/codec/definitions"
)

// initial capacity of the byte slice values are serialized into.
// Larger value --> need less memory allocations but possibly have allocated
// but unused memory
// Smaller value --> need more memory allocations but more efficient use of
// allocated memory
const initialSliceCap = 128

// BinarySerializer accumulates canonical bytes. Ordering is the caller's
// concern: the object serialization path sorts fields before emitting them
// here.
type BinarySerializer struct {
	sink []byte
}

func NewBinarySerializer() *BinarySerializer {
	return &BinarySerializer{sink: make([]byte, 0, initialSliceCap)}
}

// Put appends raw bytes.
func (s *BinarySerializer) Put(b []byte) {
	s.sink = append(s.sink, b...)
}

// Bytes returns the accumulated buffer.
func (s *BinarySerializer) Bytes() []byte {
	return s.sink
}

// Hex returns the accumulated buffer as uppercase hex.
func (s *BinarySerializer) Hex() string {
	return strings.ToUpper(hex.EncodeToString(s.sink))
}

// WriteFieldAndValue emits one field: header, length prefix when the field
// is VL-encoded, the value bytes, and the end marker that delimits nested
// objects and arrays.
func (s *BinarySerializer) WriteFieldAndValue(f definitions.FieldInstance, value []byte) error {
	header, err := EncodeFieldHeader(f.Header)
	if err != nil {
		return err
	}
	s.Put(header)

	if f.IsVLEncoded {
		prefix, err := EncodeVariableLength(len(value))
		if err != nil {
			return err
		}
		s.Put(prefix)
	}

	s.Put(value)

	switch f.Header.TypeCode {
	case definitions.TypeSTObject:
		return s.writeMarker("ObjectEndMarker")
	case definitions.TypeSTArray:
		return s.writeMarker("ArrayEndMarker")
	}
	return nil
}

func (s *BinarySerializer) writeMarker(name string) error {
	marker, ok := definitions.Get().FieldByName(name)
	if !ok {
		return ErrUnknownField
	}
	header, err := EncodeFieldHeader(marker.Header)
	if err != nil {
		return err
	}
	s.Put(header)
	return nil
}
