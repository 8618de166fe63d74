// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"

	"github.com/xdvsf/xrpl4j/codec/definitions"
	"github.com/xdvsf/xrpl4j/codec/serdes"
)

// STArray is an ordered sequence of single-field wrapper objects, e.g.
// [{"Memo": {...}}, ...]. Member order is significant and preserved; only
// the fields inside each member are canonically sorted.
type STArray struct {
	members []fieldValue
}

func (*STArray) FromJSON(value any) (SerializedType, error) {
	array, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected JSON array, got %T", ErrMalformedInput, value)
	}

	defs := definitions.Get()
	members := make([]fieldValue, 0, len(array))
	for _, memberJSON := range array {
		wrapper, ok := memberJSON.(map[string]any)
		if !ok || len(wrapper) != 1 {
			return nil, fmt.Errorf("%w: array members must be single-field objects", ErrMalformedInput)
		}
		for name, inner := range wrapper {
			f, ok := defs.FieldByName(name)
			if !ok {
				return nil, fmt.Errorf("%w: unknown field %q", ErrMalformedInput, name)
			}
			if f.Header.TypeCode != definitions.TypeSTObject {
				return nil, fmt.Errorf("%w: array member %q is not an object field", ErrMalformedInput, name)
			}
			v, err := (&STObject{}).FromJSON(inner)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", name, err)
			}
			members = append(members, fieldValue{field: f, value: v})
		}
	}
	return &STArray{members: members}, nil
}

// FromParser reads members until the array end marker or buffer exhaustion.
func (*STArray) FromParser(p *serdes.BinaryParser, _ int) (SerializedType, error) {
	var members []fieldValue
	for p.HasMore() {
		f, err := p.ReadField()
		if err != nil {
			return nil, err
		}
		if f.Name == arrayEndMarkerName {
			break
		}
		if f.Header.TypeCode != definitions.TypeSTObject {
			return nil, fmt.Errorf("%w: array member %q is not an object field", serdes.ErrInvalidEncoding, f.Name)
		}
		v, err := (&STObject{}).FromParser(p, -1)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", f.Name, err)
		}
		members = append(members, fieldValue{field: f, value: v})
	}
	return &STArray{members: members}, nil
}

func (t *STArray) ToJSON() any {
	array := make([]any, len(t.members))
	for i, member := range t.members {
		array[i] = map[string]any{member.field.Name: member.value.ToJSON()}
	}
	return array
}

func (t *STArray) Bytes() []byte {
	s := serdes.NewBinarySerializer()
	for _, member := range t.members {
		if err := s.WriteFieldAndValue(member.field, member.value.Bytes()); err != nil {
			panic(err) // registry-resolved fields always have encodable headers
		}
	}
	return s.Bytes()
}
