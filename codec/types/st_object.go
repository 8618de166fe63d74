// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/xdvsf/xrpl4j/codec/definitions"
	"github.com/xdvsf/xrpl4j/codec/serdes"
)

const (
	objectEndMarkerName = "ObjectEndMarker"
	arrayEndMarkerName  = "ArrayEndMarker"
)

// fieldValue pairs a registry field with its decoded value.
type fieldValue struct {
	field definitions.FieldInstance
	value SerializedType
}

// STObject is a mapping from field name to typed value. Inbound JSON field
// order is irrelevant: serialization always emits fields in ascending
// (typeCode, fieldCode) order, which is what makes the encoding canonical.
type STObject struct {
	fields []fieldValue
}

func (*STObject) FromJSON(value any) (SerializedType, error) {
	object, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected JSON object, got %T", ErrMalformedInput, value)
	}

	defs := definitions.Get()
	fields := make([]fieldValue, 0, len(object))
	for name, fieldJSON := range object {
		f, ok := defs.FieldByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q", ErrMalformedInput, name)
		}
		if !f.IsSerialized {
			continue
		}

		fieldJSON, err := enumToCode(defs, name, fieldJSON)
		if err != nil {
			return nil, err
		}

		empty, err := New(f.Header.TypeCode)
		if err != nil {
			return nil, err
		}
		v, err := empty.FromJSON(fieldJSON)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		fields = append(fields, fieldValue{field: f, value: v})
	}

	slices.SortFunc(fields, func(a, b fieldValue) bool {
		return a.field.Ordinal() < b.field.Ordinal()
	})
	return &STObject{fields: fields}, nil
}

// FromParser reads fields until the object end marker, or until the buffer
// is exhausted: top-level objects have no marker and consume the whole
// buffer.
func (*STObject) FromParser(p *serdes.BinaryParser, _ int) (SerializedType, error) {
	var fields []fieldValue
	for p.HasMore() {
		f, err := p.ReadField()
		if err != nil {
			return nil, err
		}
		if f.Name == objectEndMarkerName {
			break
		}

		hint := -1
		if f.IsVLEncoded {
			hint, err = p.ReadVariableLength()
			if err != nil {
				return nil, err
			}
		}

		empty, err := New(f.Header.TypeCode)
		if err != nil {
			return nil, err
		}
		v, err := empty.FromParser(p, hint)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		fields = append(fields, fieldValue{field: f, value: v})
	}
	return &STObject{fields: fields}, nil
}

func (t *STObject) ToJSON() any {
	defs := definitions.Get()
	object := make(map[string]any, len(t.fields))
	for _, fv := range t.fields {
		object[fv.field.Name] = codeToEnum(defs, fv.field.Name, fv.value.ToJSON())
	}
	return object
}

func (t *STObject) Bytes() []byte {
	s := serdes.NewBinarySerializer()
	for _, fv := range t.fields {
		// fields are already in canonical order; FromJSON sorts and
		// FromParser reads canonical input.
		if err := s.WriteFieldAndValue(fv.field, fv.value.Bytes()); err != nil {
			panic(err) // registry-resolved fields always have encodable headers
		}
	}
	return s.Bytes()
}

// enumToCode converts the symbolic JSON form of enumerated UInt16 fields
// (transaction type, ledger entry type) to its wire code.
func enumToCode(defs *definitions.Definitions, name string, value any) (any, error) {
	s, isString := value.(string)
	if !isString {
		return value, nil
	}
	switch name {
	case "TransactionType":
		code, ok := defs.TransactionTypeCode(s)
		if !ok {
			return nil, fmt.Errorf("%w: unknown transaction type %q", ErrMalformedInput, s)
		}
		return json.Number(strconv.FormatInt(int64(code), 10)), nil
	case "LedgerEntryType":
		code, ok := defs.LedgerEntryTypeCode(s)
		if !ok {
			return nil, fmt.Errorf("%w: unknown ledger entry type %q", ErrMalformedInput, s)
		}
		return json.Number(strconv.FormatInt(int64(code), 10)), nil
	default:
		return value, nil
	}
}

// codeToEnum is the inverse of enumToCode; codes without a symbolic name
// stay numeric.
func codeToEnum(defs *definitions.Definitions, name string, value any) any {
	number, isNumber := value.(json.Number)
	if !isNumber {
		return value
	}
	code, err := strconv.ParseInt(number.String(), 10, 32)
	if err != nil {
		return value
	}
	switch name {
	case "TransactionType":
		if symbol, ok := defs.TransactionTypeName(int32(code)); ok {
			return symbol
		}
	case "LedgerEntryType":
		if symbol, ok := defs.LedgerEntryTypeName(int32(code)); ok {
			return symbol
		}
	}
	return value
}
