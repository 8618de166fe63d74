// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package addresses

// Version is a protocol-assigned prefix prepended to a payload before
// checksum encoding. The prefix determines the first character(s) of the
// rendered string, which is how the textual formats stay visually distinct.
type Version struct {
	Name  string
	Bytes []byte
}

var (
	// VersionAccountID renders 20 byte account ids as addresses starting
	// with 'r'.
	VersionAccountID = Version{Name: "ACCOUNT_ID", Bytes: []byte{0x00}}

	// VersionFamilySeed renders secp256k1 seeds as strings starting with 's'.
	VersionFamilySeed = Version{Name: "FAMILY_SEED", Bytes: []byte{0x21}}

	// VersionEd25519Seed renders ed25519 seeds as strings starting with
	// "sEd".
	VersionEd25519Seed = Version{Name: "ED25519_SEED", Bytes: []byte{0x01, 0xE1, 0x4B}}

	// VersionNodePublic renders 33 byte node public keys as strings starting
	// with 'n'.
	VersionNodePublic = Version{Name: "NODE_PUBLIC", Bytes: []byte{0x1C}}

	// VersionAccountPublicKey renders 33 byte account public keys as strings
	// starting with 'a'.
	VersionAccountPublicKey = Version{Name: "ACCOUNT_PUBLIC_KEY", Bytes: []byte{0x23}}
)

// KeyType identifies the signature algorithm a seed or key pair is meant for.
type KeyType uint8

const (
	ED25519 KeyType = iota
	SECP256K1
)

func (kt KeyType) String() string {
	switch kt {
	case ED25519:
		return "ed25519"
	case SECP256K1:
		return "secp256k1"
	default:
		return "unknown"
	}
}

// SeedVersion returns the seed version prefix for this algorithm.
func (kt KeyType) SeedVersion() Version {
	if kt == ED25519 {
		return VersionEd25519Seed
	}
	return VersionFamilySeed
}

// Decoded is the result of decoding a checksummed, versioned string: the raw
// payload, the version recovered from the prefix, and (for seeds) the key
// algorithm that version implies.
type Decoded struct {
	Version Version
	Type    KeyType
	HasType bool
	Bytes   []byte
}
