// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/hex"
	"fmt"

	"github.com/xdvsf/xrpl4j/addresses"
	"github.com/xdvsf/xrpl4j/codec/serdes"
	"github.com/xdvsf/xrpl4j/ids"
)

// AccountIDType is a 20 byte account identifier. On the JSON side it is a
// classic address; a 40 character hex form is accepted inbound. As a field
// it is length-prefixed (always 20); inside path steps it appears raw.
type AccountIDType struct {
	value ids.AccountID
}

func (*AccountIDType) FromJSON(value any) (SerializedType, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected address string, got %T", ErrMalformedInput, value)
	}

	if len(s) == 2*ids.AccountIDLen {
		if b, err := hex.DecodeString(s); err == nil {
			id, err := ids.ToAccountID(b)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
			}
			return &AccountIDType{value: id}, nil
		}
	}

	id, err := addresses.DecodeAccountID(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
	}
	return &AccountIDType{value: id}, nil
}

func (*AccountIDType) FromParser(p *serdes.BinaryParser, _ int) (SerializedType, error) {
	b, err := p.ReadBytes(ids.AccountIDLen)
	if err != nil {
		return nil, err
	}
	id, err := ids.ToAccountID(b)
	if err != nil {
		return nil, err
	}
	return &AccountIDType{value: id}, nil
}

func (t *AccountIDType) ToJSON() any {
	address, err := addresses.EncodeAccountID(t.value)
	if err != nil {
		// a populated AccountIDType always holds exactly 20 bytes
		panic(err)
	}
	return address
}

func (t *AccountIDType) Bytes() []byte {
	return t.value.Bytes()
}
