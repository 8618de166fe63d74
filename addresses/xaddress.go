// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package addresses

import (
	"bytes"
	"fmt"

	"github.com/xdvsf/xrpl4j/ids"
	"github.com/xdvsf/xrpl4j/utils/b58"
)

// X-address payload layout, 31 bytes before the checksum:
//
//	[0:2]   network prefix
//	[2:22]  account id
//	[22]    tag presence flag (0 = none, 1 = 32-bit tag)
//	[23:27] little-endian 32-bit tag, zero when absent
//	[27:31] reserved for future 64-bit tags, always zero
const xAddressPayloadLength = 31

var (
	xAddressPrefixMain = []byte{0x05, 0x44}
	xAddressPrefixTest = []byte{0x04, 0x93}
)

// ClassicAddress is the result of unpacking an X-address: the classic form
// of the account, the optional destination tag, and the network flag.
type ClassicAddress struct {
	Address string
	Tag     uint32
	HasTag  bool
	Test    bool
}

// DecodedXAddress holds the raw contents of an X-address.
type DecodedXAddress struct {
	AccountID ids.AccountID
	Tag       uint32
	HasTag    bool
	Test      bool
}

// ClassicAddressToXAddress converts a classic address and an optional
// destination tag to an X-address. [tag] is ignored unless [hasTag] is set.
func ClassicAddressToXAddress(classicAddress string, tag uint32, hasTag bool, test bool) (string, error) {
	accountID, err := DecodeAccountID(classicAddress)
	if err != nil {
		return "", err
	}
	return EncodeXAddress(accountID, tag, hasTag, test)
}

// XAddressToClassicAddress unpacks an X-address into its classic address,
// destination tag and network flag.
func XAddressToClassicAddress(xAddress string) (ClassicAddress, error) {
	decoded, err := DecodeXAddress(xAddress)
	if err != nil {
		return ClassicAddress{}, err
	}

	classicAddress, err := EncodeAccountID(decoded.AccountID)
	if err != nil {
		return ClassicAddress{}, err
	}

	return ClassicAddress{
		Address: classicAddress,
		Tag:     decoded.Tag,
		HasTag:  decoded.HasTag,
		Test:    decoded.Test,
	}, nil
}

// EncodeXAddress packs an account id, an optional destination tag and the
// network flag into a single checksummed string. The network prefix stands
// in for the version byte, so the payload is checksum-encoded directly
// rather than through the generic versioned Encode.
func EncodeXAddress(accountID ids.AccountID, tag uint32, hasTag bool, test bool) (string, error) {
	payload := make([]byte, 0, xAddressPayloadLength)
	if test {
		payload = append(payload, xAddressPrefixTest...)
	} else {
		payload = append(payload, xAddressPrefixMain...)
	}
	payload = append(payload, accountID.Bytes()...)

	flag := byte(0)
	normalizedTag := uint32(0)
	if hasTag {
		flag = 1
		normalizedTag = tag
	}
	payload = append(payload,
		flag,
		byte(normalizedTag),
		byte(normalizedTag>>8),
		byte(normalizedTag>>16),
		byte(normalizedTag>>24),
		0, 0, 0, 0, // reserved for 64-bit tags
	)

	return b58.EncodeChecked(payload)
}

// DecodeXAddress is the inverse of EncodeXAddress.
func DecodeXAddress(xAddress string) (DecodedXAddress, error) {
	decoded, err := b58.DecodeChecked(xAddress)
	if err != nil {
		return DecodedXAddress{}, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	if len(decoded) != xAddressPayloadLength {
		return DecodedXAddress{}, fmt.Errorf("%w: %s", ErrDecode, ErrUnexpectedLength)
	}

	test, err := isTestXAddress(decoded)
	if err != nil {
		return DecodedXAddress{}, err
	}

	accountID, err := ids.ToAccountID(decoded[2:22])
	if err != nil {
		return DecodedXAddress{}, err
	}

	tag, hasTag, err := tagFromDecodedXAddress(decoded)
	if err != nil {
		return DecodedXAddress{}, err
	}

	return DecodedXAddress{
		AccountID: accountID,
		Tag:       tag,
		HasTag:    hasTag,
		Test:      test,
	}, nil
}

func tagFromDecodedXAddress(decoded []byte) (uint32, bool, error) {
	flag := decoded[22]
	switch {
	case flag >= 2:
		return 0, false, ErrUnsupported64Tag
	case flag == 1:
		tag := uint32(decoded[23]) |
			uint32(decoded[24])<<8 |
			uint32(decoded[25])<<16 |
			uint32(decoded[26])<<24
		return tag, true, nil
	default:
		var zero [8]byte
		if !bytes.Equal(decoded[23:31], zero[:]) {
			return 0, false, ErrNonZeroTagBytes
		}
		return 0, false, nil
	}
}

func isTestXAddress(decoded []byte) (bool, error) {
	prefix := decoded[:2]
	switch {
	case bytes.Equal(prefix, xAddressPrefixMain):
		return false, nil
	case bytes.Equal(prefix, xAddressPrefixTest):
		return true, nil
	default:
		return false, ErrInvalidPrefix
	}
}

// IsValidXAddress reports whether [xAddress] decodes as an X-address. All
// decode failures, of any kind, yield false.
func IsValidXAddress(xAddress string) bool {
	_, err := DecodeXAddress(xAddress)
	return err == nil
}
