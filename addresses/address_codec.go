// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package addresses implements the checksummed textual formats the ledger
// protocol uses for account ids, public keys and key seeds, plus the
// extended (X-) address format that packs a destination tag next to the
// account id.
package addresses

import (
	"bytes"
	"fmt"

	"github.com/xdvsf/xrpl4j/ids"
	"github.com/xdvsf/xrpl4j/utils/b58"
	"github.com/xdvsf/xrpl4j/utils/hashing"
)

const (
	accountIDLength = 20
	publicKeyLength = 33
	seedLength      = 16
)

// Encode checksum-encodes [payload] under [version]. The payload length is
// validated against [expectedLength] before any bytes are produced.
func Encode(payload []byte, version Version, expectedLength int) (string, error) {
	if len(payload) != expectedLength {
		return "", fmt.Errorf("%w: length of payload (%d) does not match expected length (%d)",
			ErrEncode, len(payload), expectedLength)
	}

	versioned := make([]byte, 0, len(version.Bytes)+len(payload))
	versioned = append(versioned, version.Bytes...)
	versioned = append(versioned, payload...)
	return b58.EncodeChecked(versioned)
}

// Decode base58-decodes [str], verifies and strips the trailing checksum,
// matches the remaining prefix against [versions] and validates the payload
// length. [keyTypes], when non-empty, must parallel [versions]; the matched
// entry is reported in the result so seed decoding can recover the key
// algorithm from the version alone.
func Decode(str string, keyTypes []KeyType, versions []Version, expectedLength int) (Decoded, error) {
	if len(keyTypes) > 0 && len(keyTypes) != len(versions) {
		return Decoded{}, fmt.Errorf("%w: versions and key types must have the same length", ErrDecode)
	}

	withoutSum, err := b58.DecodeChecked(str)
	if err != nil {
		return Decoded{}, fmt.Errorf("%w: %s", ErrDecode, err)
	}

	for i, version := range versions {
		if len(withoutSum) < len(version.Bytes) {
			continue
		}
		prefix := withoutSum[:len(version.Bytes)]
		payload := withoutSum[len(version.Bytes):]
		if !bytes.Equal(prefix, version.Bytes) {
			continue
		}
		if len(payload) != expectedLength {
			return Decoded{}, fmt.Errorf("%w: %s", ErrDecode, ErrUnexpectedLength)
		}
		decoded := Decoded{
			Version: version,
			Bytes:   payload,
		}
		if len(keyTypes) > 0 {
			decoded.Type = keyTypes[i]
			decoded.HasType = true
		}
		return decoded, nil
	}

	return Decoded{}, fmt.Errorf("%w: %s", ErrDecode, ErrUnknownVersion)
}

// EncodeSeed encodes 16 bytes of entropy as a seed for the given algorithm.
func EncodeSeed(entropy ids.Entropy, keyType KeyType) (string, error) {
	return Encode(entropy.Bytes(), keyType.SeedVersion(), seedLength)
}

// DecodeSeed decodes a seed of either algorithm; the algorithm is recovered
// from the version prefix and reported in the result.
func DecodeSeed(seed string) (Decoded, error) {
	return Decode(
		seed,
		[]KeyType{ED25519, SECP256K1},
		[]Version{VersionEd25519Seed, VersionFamilySeed},
		seedLength,
	)
}

// EncodeAccountID encodes a 20 byte account id as a classic address.
func EncodeAccountID(accountID ids.AccountID) (string, error) {
	return Encode(accountID.Bytes(), VersionAccountID, accountIDLength)
}

// DecodeAccountID decodes a classic address into its 20 byte account id.
func DecodeAccountID(address string) (ids.AccountID, error) {
	decoded, err := Decode(address, nil, []Version{VersionAccountID}, accountIDLength)
	if err != nil {
		return ids.AccountID{}, err
	}
	return ids.ToAccountID(decoded.Bytes)
}

// EncodeNodePublicKey encodes a 33 byte node public key.
func EncodeNodePublicKey(publicKey []byte) (string, error) {
	return Encode(publicKey, VersionNodePublic, publicKeyLength)
}

// DecodeNodePublicKey decodes a node public key to its 33 raw bytes.
func DecodeNodePublicKey(publicKey string) ([]byte, error) {
	decoded, err := Decode(publicKey, nil, []Version{VersionNodePublic}, publicKeyLength)
	if err != nil {
		return nil, err
	}
	return decoded.Bytes, nil
}

// EncodeAccountPublicKey encodes a 33 byte account public key.
func EncodeAccountPublicKey(publicKey []byte) (string, error) {
	return Encode(publicKey, VersionAccountPublicKey, publicKeyLength)
}

// DecodeAccountPublicKey decodes an account public key to its 33 raw bytes.
func DecodeAccountPublicKey(publicKey string) ([]byte, error) {
	decoded, err := Decode(publicKey, nil, []Version{VersionAccountPublicKey}, publicKeyLength)
	if err != nil {
		return nil, err
	}
	return decoded.Bytes, nil
}

// AccountIDFromPublicKey derives the account id for a serialized public key:
// ripemd160 over sha256 of the key bytes.
func AccountIDFromPublicKey(publicKey []byte) (ids.AccountID, error) {
	return ids.ToAccountID(hashing.PubkeyBytesToAccountID(publicKey))
}

// IsValidClassicAddress reports whether [address] decodes as a classic
// address. All decode failures, of any kind, yield false.
func IsValidClassicAddress(address string) bool {
	_, err := DecodeAccountID(address)
	return err == nil
}
