// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/xdvsf/xrpl4j/codec/serdes"
)

// hashFromJSON parses a fixed-size hash from its hex string form.
func hashFromJSON(value any, width int) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected hex string, got %T", ErrMalformedInput, value)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
	}
	if len(b) != width {
		return nil, fmt.Errorf("%w: expected %d hash bytes, got %d", ErrMalformedInput, width, len(b))
	}
	return b, nil
}

// Hash128 is a 16 byte hash.
type Hash128 struct {
	value [16]byte
}

func (*Hash128) FromJSON(value any) (SerializedType, error) {
	b, err := hashFromJSON(value, 16)
	if err != nil {
		return nil, err
	}
	h := &Hash128{}
	copy(h.value[:], b)
	return h, nil
}

func (*Hash128) FromParser(p *serdes.BinaryParser, _ int) (SerializedType, error) {
	b, err := p.ReadBytes(16)
	if err != nil {
		return nil, err
	}
	h := &Hash128{}
	copy(h.value[:], b)
	return h, nil
}

func (t *Hash128) ToJSON() any {
	return strings.ToUpper(hex.EncodeToString(t.value[:]))
}

func (t *Hash128) Bytes() []byte {
	return t.value[:]
}

// Hash160 is a 20 byte hash.
type Hash160 struct {
	value [20]byte
}

func (*Hash160) FromJSON(value any) (SerializedType, error) {
	b, err := hashFromJSON(value, 20)
	if err != nil {
		return nil, err
	}
	h := &Hash160{}
	copy(h.value[:], b)
	return h, nil
}

func (*Hash160) FromParser(p *serdes.BinaryParser, _ int) (SerializedType, error) {
	b, err := p.ReadBytes(20)
	if err != nil {
		return nil, err
	}
	h := &Hash160{}
	copy(h.value[:], b)
	return h, nil
}

func (t *Hash160) ToJSON() any {
	return strings.ToUpper(hex.EncodeToString(t.value[:]))
}

func (t *Hash160) Bytes() []byte {
	return t.value[:]
}

// Hash256 is a 32 byte hash.
type Hash256 struct {
	value [32]byte
}

func (*Hash256) FromJSON(value any) (SerializedType, error) {
	b, err := hashFromJSON(value, 32)
	if err != nil {
		return nil, err
	}
	h := &Hash256{}
	copy(h.value[:], b)
	return h, nil
}

func (*Hash256) FromParser(p *serdes.BinaryParser, _ int) (SerializedType, error) {
	b, err := p.ReadBytes(32)
	if err != nil {
		return nil, err
	}
	h := &Hash256{}
	copy(h.value[:], b)
	return h, nil
}

func (t *Hash256) ToJSON() any {
	return strings.ToUpper(hex.EncodeToString(t.value[:]))
}

func (t *Hash256) Bytes() []byte {
	return t.value[:]
}
