// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package b58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/xdvsf/xrpl4j/utils/hashing"
)

const (
	// ChecksumLen is the length, in bytes, of the integrity checksum appended
	// to every checked encoding.
	ChecksumLen = 4

	// maximum length byte slice that can be marshalled to a checked string.
	// Must be longer than the length of any versioned payload the address
	// codec produces.
	maxCheckedSize = 16 * 1024 // 16 KB
)

// alphabet is the base58 dictionary the ledger protocol uses. It is not the
// Bitcoin alphabet: 'r' is the zero digit, which is why account addresses
// start with 'r'.
var alphabet = base58.NewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")

var (
	ErrMissingChecksum = errors.New("input string is smaller than the checksum size")
	ErrBadChecksum     = errors.New("invalid input checksum")
)

// Encode formats [b] in the protocol's base58 alphabet without a checksum.
func Encode(b []byte) string {
	return base58.EncodeAlphabet(b, alphabet)
}

// Decode is the inverse of Encode.
func Decode(str string) ([]byte, error) {
	return base58.DecodeAlphabet(str, alphabet)
}

// EncodeChecked formats [b] in checksummed base58: the first ChecksumLen bytes
// of the double sha256 of [b] are appended before encoding.
func EncodeChecked(b []byte) (string, error) {
	if len(b) > maxCheckedSize {
		return "", fmt.Errorf("byte slice length (%d) > maximum for checked encoding (%d)", len(b), maxCheckedSize)
	}
	checked := make([]byte, len(b)+ChecksumLen)
	copy(checked, b)
	copy(checked[len(b):], hashing.Checksum(b, ChecksumLen))
	return base58.EncodeAlphabet(checked, alphabet), nil
}

// DecodeChecked decodes [str] and verifies and strips its trailing checksum.
func DecodeChecked(str string) ([]byte, error) {
	b, err := base58.DecodeAlphabet(str, alphabet)
	if err != nil {
		return nil, err
	}
	if len(b) < ChecksumLen {
		return nil, ErrMissingChecksum
	}

	rawBytes := b[:len(b)-ChecksumLen]
	checksum := b[len(b)-ChecksumLen:]

	if !bytes.Equal(checksum, hashing.Checksum(rawBytes, ChecksumLen)) {
		return nil, ErrBadChecksum
	}

	return rawBytes, nil
}
