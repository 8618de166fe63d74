// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/xdvsf/xrpl4j/codec/serdes"
)

// Blob is an arbitrary byte string. Its length prefix is written and read
// by the object serialization path; the blob itself is just the payload.
type Blob struct {
	value []byte
}

func (*Blob) FromJSON(value any) (SerializedType, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected hex string, got %T", ErrMalformedInput, value)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
	}
	return &Blob{value: b}, nil
}

func (*Blob) FromParser(p *serdes.BinaryParser, hint int) (SerializedType, error) {
	if hint < 0 {
		return nil, fmt.Errorf("%w: blob requires a length prefix", serdes.ErrInvalidEncoding)
	}
	b, err := p.ReadBytes(hint)
	if err != nil {
		return nil, err
	}
	return &Blob{value: b}, nil
}

func (t *Blob) ToJSON() any {
	return strings.ToUpper(hex.EncodeToString(t.value))
}

func (t *Blob) Bytes() []byte {
	return t.value
}
