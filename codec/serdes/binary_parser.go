// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package serdes holds the low level wire primitives: a cursor over a byte
// buffer for decoding and an append-only sink for encoding, plus the field
// header and length prefix codecs both sides share.
package serdes

import "fmt"

// BinaryParser is a stateful cursor over a byte buffer. It never copies the
// buffer; callers must not mutate it while the parser is live.
type BinaryParser struct {
	data   []byte
	offset int
}

func NewBinaryParser(data []byte) *BinaryParser {
	return &BinaryParser{data: data}
}

// HasMore reports whether any bytes remain.
func (p *BinaryParser) HasMore() bool {
	return p.offset < len(p.data)
}

// Remaining returns the number of unread bytes.
func (p *BinaryParser) Remaining() int {
	return len(p.data) - p.offset
}

// Peek returns the next byte without consuming it.
func (p *BinaryParser) Peek() (byte, error) {
	if !p.HasMore() {
		return 0, ErrTruncatedInput
	}
	return p.data[p.offset], nil
}

// ReadByte consumes and returns one byte.
func (p *BinaryParser) ReadByte() (byte, error) {
	if !p.HasMore() {
		return 0, ErrTruncatedInput
	}
	b := p.data[p.offset]
	p.offset++
	return b, nil
}

// ReadBytes consumes and returns the next [n] bytes.
func (p *BinaryParser) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative read of %d bytes", ErrInvalidEncoding, n)
	}
	if p.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes but only %d remain", ErrTruncatedInput, n, p.Remaining())
	}
	b := p.data[p.offset : p.offset+n]
	p.offset += n
	return b, nil
}
