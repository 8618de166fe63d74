// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package addresses

import (
	"bytes"

	"github.com/xdvsf/xrpl4j/ids"
	"github.com/xdvsf/xrpl4j/utils/hashing"
)

// Seed is a compact secret value that key pairs for an account are derived
// from. It owns its backing bytes: Destroy zeroes them in place and marks
// the seed unusable, after which every accessor returns ErrDestroyed.
//
// A Seed is safe for concurrent readers until the first Destroy call;
// Destroy itself must not race other users.
type Seed struct {
	// value holds the full decoded seed: version prefix plus entropy.
	value     []byte
	destroyed bool
}

// SeedFromPassphrase derives a seed deterministically from a passphrase:
// the entropy is the first 16 bytes of the passphrase's sha512.
func SeedFromPassphrase(passphrase string, keyType KeyType) (*Seed, error) {
	entropy, err := ids.ToEntropy(hashing.ComputeHash512([]byte(passphrase))[:ids.EntropyLen])
	if err != nil {
		return nil, err
	}
	return SeedFromEntropy(entropy, keyType)
}

// SeedFromEntropy builds a seed for the given algorithm from 16 bytes of
// entropy.
func SeedFromEntropy(entropy ids.Entropy, keyType KeyType) (*Seed, error) {
	version := keyType.SeedVersion()
	value := make([]byte, 0, len(version.Bytes)+ids.EntropyLen)
	value = append(value, version.Bytes...)
	value = append(value, entropy.Bytes()...)
	return &Seed{value: value}, nil
}

// SeedFromString decodes a textual seed of either algorithm.
func SeedFromString(seed string) (*Seed, error) {
	decoded, err := DecodeSeed(seed)
	if err != nil {
		return nil, err
	}
	value := make([]byte, 0, len(decoded.Version.Bytes)+len(decoded.Bytes))
	value = append(value, decoded.Version.Bytes...)
	value = append(value, decoded.Bytes...)
	return &Seed{value: value}, nil
}

// Decoded returns the seed's entropy and key algorithm.
func (s *Seed) Decoded() (Decoded, error) {
	str, err := s.Encoded()
	if err != nil {
		return Decoded{}, err
	}
	return DecodeSeed(str)
}

// Encoded renders the seed in its checksummed textual form.
func (s *Seed) Encoded() (string, error) {
	if s.destroyed {
		return "", ErrDestroyed
	}
	// re-derive the version split rather than remembering it; the ed25519
	// prefix is 3 bytes, the secp256k1 prefix 1.
	prefixLen := len(s.value) - ids.EntropyLen
	version := VersionFamilySeed
	if prefixLen == len(VersionEd25519Seed.Bytes) {
		version = VersionEd25519Seed
	}
	return Encode(s.value[prefixLen:], version, ids.EntropyLen)
}

// Destroy zeroes the backing bytes and marks the seed destroyed. It is
// idempotent.
func (s *Seed) Destroy() {
	for i := range s.value {
		s.value[i] = 0
	}
	s.destroyed = true
}

// IsDestroyed reports whether Destroy has been called.
func (s *Seed) IsDestroyed() bool {
	return s.destroyed
}

// Equal compares the raw backing bytes. A destroyed seed compares equal only
// to another seed whose bytes are also zeroed; callers must not compare
// after destruction and expect the pre-destruction identity.
func (s *Seed) Equal(other *Seed) bool {
	if s == other {
		return true
	}
	if other == nil {
		return false
	}
	return bytes.Equal(s.value, other.value)
}

// String is the redacted display form; the seed value itself is never
// printed.
func (s *Seed) String() string {
	if s.destroyed {
		return "Seed{value=[redacted], destroyed=true}"
	}
	return "Seed{value=[redacted], destroyed=false}"
}
