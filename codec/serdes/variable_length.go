// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serdes

import "fmt"

// Variable-length prefix boundaries. The three ranges are disjoint on the
// first byte (0-192, 193-240, 241-254), which is what makes decoding
// unambiguous.
const (
	maxSingleByteLength = 192
	maxDoubleByteLength = 12480
	maxLength           = 918744
)

// EncodeVariableLength renders [length] as a 1-3 byte prefix.
func EncodeVariableLength(length int) ([]byte, error) {
	switch {
	case length < 0:
		return nil, fmt.Errorf("%w: negative length prefix", ErrInvalidEncoding)
	case length <= maxSingleByteLength:
		return []byte{byte(length)}, nil
	case length <= maxDoubleByteLength:
		length -= maxSingleByteLength + 1
		return []byte{
			byte(maxSingleByteLength + 1 + (length >> 8)),
			byte(length),
		}, nil
	case length <= maxLength:
		length -= maxDoubleByteLength + 1
		return []byte{
			byte(241 + (length >> 16)),
			byte(length >> 8),
			byte(length),
		}, nil
	default:
		return nil, fmt.Errorf("%w: length %d exceeds maximum of %d", ErrInvalidEncoding, length, maxLength)
	}
}

// ReadVariableLength reads a 1-3 byte length prefix from the parser.
func (p *BinaryParser) ReadVariableLength() (int, error) {
	b1, err := p.ReadByte()
	if err != nil {
		return 0, err
	}
	switch {
	case b1 <= maxSingleByteLength:
		return int(b1), nil
	case b1 <= 240:
		b2, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		return maxSingleByteLength + 1 + (int(b1)-maxSingleByteLength-1)<<8 + int(b2), nil
	case b1 <= 254:
		b2, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		b3, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		length := maxDoubleByteLength + 1 + (int(b1)-241)<<16 + int(b2)<<8 + int(b3)
		if length > maxLength {
			return 0, fmt.Errorf("%w: length %d exceeds maximum of %d", ErrInvalidEncoding, length, maxLength)
		}
		return length, nil
	default:
		return 0, fmt.Errorf("%w: invalid length prefix %#x", ErrInvalidEncoding, b1)
	}
}
