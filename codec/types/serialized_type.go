// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package types implements the protocol's typed value system: the
// dual-representation (JSON and canonical binary) of every serialized type
// the field registry dispatches on.
package types

import (
	"errors"
	"fmt"

	"github.com/xdvsf/xrpl4j/codec/definitions"
	"github.com/xdvsf/xrpl4j/codec/serdes"
)

// ErrMalformedInput reports a JSON value whose shape does not match the
// expected representation of the target type.
var ErrMalformedInput = errors.New("malformed input")

// SerializedType is one variant of the protocol's type system. Implementations
// are constructed empty via New and populated through FromJSON or FromParser;
// the two conversions are inverse functions modulo field ordering.
type SerializedType interface {
	// FromJSON parses the JSON-side representation of this type.
	FromJSON(value any) (SerializedType, error)

	// FromParser reads this type's canonical bytes from the cursor.
	// [hint] carries the decoded length prefix for variable-length fields
	// and is -1 for fixed-width types.
	FromParser(p *serdes.BinaryParser, hint int) (SerializedType, error)

	// ToJSON returns the JSON-side representation.
	ToJSON() any

	// Bytes returns the canonical byte encoding.
	Bytes() []byte
}

// typeRegistry is the closed dispatch table keyed by type code. Extending
// the engine to a new serialized type is adding a row here and to the field
// registry.
var typeRegistry = map[int32]func() SerializedType{
	definitions.TypeUInt8:     func() SerializedType { return &UInt8{} },
	definitions.TypeUInt16:    func() SerializedType { return &UInt16{} },
	definitions.TypeUInt32:    func() SerializedType { return &UInt32{} },
	definitions.TypeUInt64:    func() SerializedType { return &UInt64{} },
	definitions.TypeHash128:   func() SerializedType { return &Hash128{} },
	definitions.TypeHash160:   func() SerializedType { return &Hash160{} },
	definitions.TypeHash256:   func() SerializedType { return &Hash256{} },
	definitions.TypeAmount:    func() SerializedType { return &Amount{} },
	definitions.TypeBlob:      func() SerializedType { return &Blob{} },
	definitions.TypeAccountID: func() SerializedType { return &AccountIDType{} },
	definitions.TypeSTObject:  func() SerializedType { return &STObject{} },
	definitions.TypeSTArray:   func() SerializedType { return &STArray{} },
	definitions.TypePathSet:   func() SerializedType { return &PathSet{} },
	definitions.TypeVector256: func() SerializedType { return &Vector256{} },
}

// New returns an empty value of the serialized type identified by [typeCode].
func New(typeCode int32) (SerializedType, error) {
	ctor, ok := typeRegistry[typeCode]
	if !ok {
		return nil, fmt.Errorf("%w: no serialized type for type code %d", serdes.ErrUnknownField, typeCode)
	}
	return ctor(), nil
}
