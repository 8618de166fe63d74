// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package addresses

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xdvsf/xrpl4j/ids"
)

func TestSeedFromPassphraseDeterministic(t *testing.T) {
	require := require.New(t)

	a, err := SeedFromPassphrase("masterpassphrase", SECP256K1)
	require.NoError(err)
	b, err := SeedFromPassphrase("masterpassphrase", SECP256K1)
	require.NoError(err)

	aStr, err := a.Encoded()
	require.NoError(err)
	bStr, err := b.Encoded()
	require.NoError(err)
	require.Equal(aStr, bStr)
	require.Equal("snoPBrXtMeMyMHUVTgbuqAfg1SUTb", aStr)
	require.True(a.Equal(b))
}

func TestSeedAlgorithmChangesEncoding(t *testing.T) {
	require := require.New(t)

	secp, err := SeedFromPassphrase("masterpassphrase", SECP256K1)
	require.NoError(err)
	ed, err := SeedFromPassphrase("masterpassphrase", ED25519)
	require.NoError(err)

	require.False(secp.Equal(ed))

	secpDecoded, err := secp.Decoded()
	require.NoError(err)
	edDecoded, err := ed.Decoded()
	require.NoError(err)

	// same entropy, different version
	require.Equal(secpDecoded.Bytes, edDecoded.Bytes)
	require.Equal(SECP256K1, secpDecoded.Type)
	require.Equal(ED25519, edDecoded.Type)
}

func TestSeedFromStringRoundTrip(t *testing.T) {
	require := require.New(t)

	seed, err := SeedFromString("snoPBrXtMeMyMHUVTgbuqAfg1SUTb")
	require.NoError(err)
	encoded, err := seed.Encoded()
	require.NoError(err)
	require.Equal("snoPBrXtMeMyMHUVTgbuqAfg1SUTb", encoded)
}

func TestSeedDestroy(t *testing.T) {
	require := require.New(t)

	entropy, err := ids.ToEntropy([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	require.NoError(err)
	seed, err := SeedFromEntropy(entropy, ED25519)
	require.NoError(err)

	pristine, err := SeedFromEntropy(entropy, ED25519)
	require.NoError(err)
	require.True(seed.Equal(pristine))

	require.False(seed.IsDestroyed())
	seed.Destroy()
	require.True(seed.IsDestroyed())

	// reads after destruction error rather than returning zeroed bytes
	_, err = seed.Encoded()
	require.ErrorIs(err, ErrDestroyed)
	_, err = seed.Decoded()
	require.ErrorIs(err, ErrDestroyed)

	// equality is over the (now zeroed) raw bytes; a destroyed seed no
	// longer equals its pre-destruction self
	require.False(seed.Equal(pristine))

	// destroy is idempotent
	seed.Destroy()
	require.True(seed.IsDestroyed())
}

func TestSeedStringRedacted(t *testing.T) {
	require := require.New(t)

	seed, err := SeedFromPassphrase("topsecret", ED25519)
	require.NoError(err)
	require.NotContains(seed.String(), "topsecret")
	require.Contains(seed.String(), "redacted")
}
