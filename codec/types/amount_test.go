// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xdvsf/xrpl4j/codec/serdes"
)

const issuerAddressZero = "rrrrrrrrrrrrrrrrrrrrrhoLvTp"

func TestNativeAmountZeroHasTopBitClear(t *testing.T) {
	require := require.New(t)

	amount, err := (&Amount{}).FromJSON("0")
	require.NoError(err)
	require.Equal(make([]byte, 8), amount.Bytes())
}

func TestNativeAmountEncoding(t *testing.T) {
	require := require.New(t)

	amount, err := (&Amount{}).FromJSON("10")
	require.NoError(err)
	require.Equal("000000000000000A", strings.ToUpper(hex.EncodeToString(amount.Bytes())))
	require.Zero(amount.Bytes()[0] & 0x80)

	require.Equal("10", amount.ToJSON())
}

func TestNativeAmountBounds(t *testing.T) {
	require := require.New(t)

	_, err := (&Amount{}).FromJSON("100000000000000000")
	require.NoError(err)

	_, err = (&Amount{}).FromJSON("100000000000000001")
	require.ErrorIs(err, ErrMalformedInput)

	_, err = (&Amount{}).FromJSON("-1")
	require.ErrorIs(err, ErrMalformedInput)

	_, err = (&Amount{}).FromJSON("ten")
	require.ErrorIs(err, ErrMalformedInput)
}

func TestIssuedAmountKnownVector(t *testing.T) {
	require := require.New(t)

	amount, err := (&Amount{}).FromJSON(map[string]any{
		"currency": "USD",
		"issuer":   issuerAddressZero,
		"value":    "1",
	})
	require.NoError(err)

	b := amount.Bytes()
	require.Len(b, 48)
	// sign/exponent/mantissa packing of +1 * 10^0
	require.Equal("D4838D7EA4C68000", strings.ToUpper(hex.EncodeToString(b[:8])))
	// "USD" packed at bytes 12-14 of the currency field
	require.Equal(byte('U'), b[8+12])
	require.Equal(byte('S'), b[8+13])
	require.Equal(byte('D'), b[8+14])
	require.NotZero(b[0] & 0x80)
}

func TestIssuedAmountZero(t *testing.T) {
	require := require.New(t)

	amount, err := (&Amount{}).FromJSON(map[string]any{
		"currency": "USD",
		"issuer":   issuerAddressZero,
		"value":    "0",
	})
	require.NoError(err)

	// zero uses the reserved all-zero-mantissa encoding
	require.Equal("8000000000000000", strings.ToUpper(hex.EncodeToString(amount.Bytes()[:8])))

	object, ok := amount.ToJSON().(map[string]any)
	require.True(ok)
	require.Equal("0", object["value"])
}

func TestIssuedAmountRoundTrip(t *testing.T) {
	values := []string{
		"1",
		"-1",
		"1.5",
		"-0.005",
		"123456789.123",
		"0.000001",
		"9999999999999999",
		"1e5",
		"0",
	}
	normalized := map[string]string{
		"1e5": "100000",
	}

	for _, value := range values {
		t.Run(value, func(t *testing.T) {
			require := require.New(t)

			amount, err := (&Amount{}).FromJSON(map[string]any{
				"currency": "USD",
				"issuer":   issuerAddressZero,
				"value":    value,
			})
			require.NoError(err)

			p := serdes.NewBinaryParser(amount.Bytes())
			decoded, err := (&Amount{}).FromParser(p, -1)
			require.NoError(err)
			require.False(p.HasMore())

			object, ok := decoded.ToJSON().(map[string]any)
			require.True(ok)
			require.Equal("USD", object["currency"])
			require.Equal(issuerAddressZero, object["issuer"])

			expected := value
			if n, ok := normalized[value]; ok {
				expected = n
			}
			require.Equal(expected, object["value"])
		})
	}
}

func TestIssuedAmountPrecisionAndRange(t *testing.T) {
	require := require.New(t)

	// 17 significant digits
	_, err := (&Amount{}).FromJSON(map[string]any{
		"currency": "USD",
		"issuer":   issuerAddressZero,
		"value":    "12345678901234567",
	})
	require.ErrorIs(err, ErrMalformedInput)

	// exponent above the representable range
	_, err = (&Amount{}).FromJSON(map[string]any{
		"currency": "USD",
		"issuer":   issuerAddressZero,
		"value":    "1e96",
	})
	require.ErrorIs(err, ErrMalformedInput)

	// exponent below the representable range
	_, err = (&Amount{}).FromJSON(map[string]any{
		"currency": "USD",
		"issuer":   issuerAddressZero,
		"value":    "1e-97",
	})
	require.ErrorIs(err, ErrMalformedInput)
}

func TestIssuedAmountRequiresAllParts(t *testing.T) {
	for _, object := range []map[string]any{
		{"issuer": issuerAddressZero, "value": "1"},
		{"currency": "USD", "value": "1"},
		{"currency": "USD", "issuer": issuerAddressZero},
	} {
		_, err := (&Amount{}).FromJSON(object)
		require.ErrorIs(t, err, ErrMalformedInput)
	}
}

func TestAmountDecodeRejectsReservedNativeSignBit(t *testing.T) {
	raw, err := hex.DecodeString("400000000000000A")
	require.NoError(t, err)

	p := serdes.NewBinaryParser(raw)
	_, err = (&Amount{}).FromParser(p, -1)
	require.ErrorIs(t, err, serdes.ErrInvalidEncoding)
}

func TestAmountDecodeTruncated(t *testing.T) {
	p := serdes.NewBinaryParser([]byte{0x80, 0x00})
	_, err := (&Amount{}).FromParser(p, -1)
	require.ErrorIs(t, err, serdes.ErrTruncatedInput)
}

func TestNonNativeCurrencyCodes(t *testing.T) {
	require := require.New(t)

	// a 160 bit hex code passes through raw
	raw := strings.ToUpper(strings.Repeat("ab", 20))
	currency, err := currencyFromJSON(raw)
	require.NoError(err)
	require.Equal(raw, currencyToJSON(currency))

	// XRP maps to the all-zero code
	currency, err = currencyFromJSON("XRP")
	require.NoError(err)
	require.Equal([currencyLen]byte{}, currency)
	require.Equal("XRP", currencyToJSON(currency))

	_, err = currencyFromJSON("TOOLONG")
	require.ErrorIs(err, ErrMalformedInput)
	_, err = currencyFromJSON("U D")
	require.ErrorIs(err, ErrMalformedInput)
}

func TestIssuedExponentLimits(t *testing.T) {
	require := require.New(t)

	// the largest and smallest representable magnitudes round trip
	for _, value := range []string{"9999999999999999e80", "1000000000000000e-96"} {
		amount, err := (&Amount{}).FromJSON(map[string]any{
			"currency": "USD",
			"issuer":   issuerAddressZero,
			"value":    value,
		})
		require.NoError(err, value)

		p := serdes.NewBinaryParser(amount.Bytes())
		decoded, err := (&Amount{}).FromParser(p, -1)
		require.NoError(err, value)
		require.Equal(amount.Bytes(), decoded.Bytes())
	}
}
