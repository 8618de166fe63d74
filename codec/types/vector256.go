// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/xdvsf/xrpl4j/codec/serdes"
)

const hash256Len = 32

// Vector256 is a length-prefixed list of 32 byte hashes.
type Vector256 struct {
	value []byte
}

func (*Vector256) FromJSON(value any) (SerializedType, error) {
	array, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected array of hashes, got %T", ErrMalformedInput, value)
	}

	out := make([]byte, 0, len(array)*hash256Len)
	for _, hashJSON := range array {
		b, err := hashFromJSON(hashJSON, hash256Len)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return &Vector256{value: out}, nil
}

func (*Vector256) FromParser(p *serdes.BinaryParser, hint int) (SerializedType, error) {
	if hint < 0 {
		return nil, fmt.Errorf("%w: hash vector requires a length prefix", serdes.ErrInvalidEncoding)
	}
	if hint%hash256Len != 0 {
		return nil, fmt.Errorf("%w: hash vector length %d is not a multiple of %d",
			serdes.ErrInvalidEncoding, hint, hash256Len)
	}
	b, err := p.ReadBytes(hint)
	if err != nil {
		return nil, err
	}
	return &Vector256{value: b}, nil
}

func (t *Vector256) ToJSON() any {
	hashes := make([]any, 0, len(t.value)/hash256Len)
	for i := 0; i < len(t.value); i += hash256Len {
		hashes = append(hashes, strings.ToUpper(hex.EncodeToString(t.value[i:i+hash256Len])))
	}
	return hashes
}

func (t *Vector256) Bytes() []byte {
	return t.value
}
