// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xdvsf/xrpl4j/codec/definitions"
	"github.com/xdvsf/xrpl4j/codec/serdes"
)

func TestTypeRegistryCoversEveryTypeCode(t *testing.T) {
	require := require.New(t)

	for code := range typeRegistry {
		v, err := New(code)
		require.NoError(err)
		require.NotNil(v)
	}

	_, err := New(123)
	require.ErrorIs(err, serdes.ErrUnknownField)
}

func TestUIntEncodings(t *testing.T) {
	tests := []struct {
		name     string
		typeCode int32
		value    any
		expected []byte
	}{
		{
			name:     "uint8",
			typeCode: definitions.TypeUInt8,
			value:    json.Number("255"),
			expected: []byte{0xFF},
		},
		{
			name:     "uint16",
			typeCode: definitions.TypeUInt16,
			value:    json.Number("1"),
			expected: []byte{0x00, 0x01},
		},
		{
			name:     "uint32",
			typeCode: definitions.TypeUInt32,
			value:    json.Number("4294967295"),
			expected: []byte{0xFF, 0xFF, 0xFF, 0xFF},
		},
		{
			name:     "uint64 from hex string",
			typeCode: definitions.TypeUInt64,
			value:    "000000000000000A",
			expected: []byte{0, 0, 0, 0, 0, 0, 0, 0x0A},
		},
		{
			name:     "uint64 from number",
			typeCode: definitions.TypeUInt64,
			value:    json.Number("10"),
			expected: []byte{0, 0, 0, 0, 0, 0, 0, 0x0A},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			empty, err := New(test.typeCode)
			require.NoError(err)

			encoded, err := empty.FromJSON(test.value)
			require.NoError(err)
			require.Equal(test.expected, encoded.Bytes())

			p := serdes.NewBinaryParser(test.expected)
			decoded, err := empty.FromParser(p, -1)
			require.NoError(err)
			require.Equal(test.expected, decoded.Bytes())
			require.False(p.HasMore())
		})
	}
}

func TestUIntRangeValidation(t *testing.T) {
	require := require.New(t)

	_, err := (&UInt8{}).FromJSON(json.Number("256"))
	require.ErrorIs(err, ErrMalformedInput)
	_, err = (&UInt16{}).FromJSON(json.Number("65536"))
	require.ErrorIs(err, ErrMalformedInput)
	_, err = (&UInt32{}).FromJSON(json.Number("4294967296"))
	require.ErrorIs(err, ErrMalformedInput)
	_, err = (&UInt32{}).FromJSON(json.Number("-1"))
	require.ErrorIs(err, ErrMalformedInput)
	_, err = (&UInt64{}).FromJSON("not hex")
	require.ErrorIs(err, ErrMalformedInput)
}

func TestUInt64JSONFormIsHex(t *testing.T) {
	require := require.New(t)

	v, err := (&UInt64{}).FromJSON(json.Number("10"))
	require.NoError(err)
	require.Equal("000000000000000A", v.ToJSON())
}

func TestHashWidths(t *testing.T) {
	tests := []struct {
		name  string
		value SerializedType
		width int
	}{
		{name: "hash128", value: &Hash128{}, width: 16},
		{name: "hash160", value: &Hash160{}, width: 20},
		{name: "hash256", value: &Hash256{}, width: 32},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			hexForm := strings.Repeat("AB", test.width)
			v, err := test.value.FromJSON(hexForm)
			require.NoError(err)
			require.Len(v.Bytes(), test.width)
			require.Equal(hexForm, v.ToJSON())

			// one byte short
			_, err = test.value.FromJSON(strings.Repeat("AB", test.width-1))
			require.ErrorIs(err, ErrMalformedInput)

			p := serdes.NewBinaryParser(v.Bytes())
			decoded, err := test.value.FromParser(p, -1)
			require.NoError(err)
			require.Equal(v.Bytes(), decoded.Bytes())
		})
	}
}

func TestBlob(t *testing.T) {
	require := require.New(t)

	v, err := (&Blob{}).FromJSON("DEADBEEF")
	require.NoError(err)
	require.Equal([]byte{0xDE, 0xAD, 0xBE, 0xEF}, v.Bytes())
	require.Equal("DEADBEEF", v.ToJSON())

	empty, err := (&Blob{}).FromJSON("")
	require.NoError(err)
	require.Empty(empty.Bytes())
	require.Equal("", empty.ToJSON())

	_, err = (&Blob{}).FromJSON("xyz")
	require.ErrorIs(err, ErrMalformedInput)

	// blobs carry no intrinsic width; the length prefix is mandatory
	_, err = (&Blob{}).FromParser(serdes.NewBinaryParser([]byte{1, 2, 3}), -1)
	require.ErrorIs(err, serdes.ErrInvalidEncoding)

	decoded, err := (&Blob{}).FromParser(serdes.NewBinaryParser([]byte{1, 2, 3}), 2)
	require.NoError(err)
	require.Equal([]byte{1, 2}, decoded.Bytes())
}

func TestAccountIDTypeForms(t *testing.T) {
	require := require.New(t)

	// the classic address and raw hex forms are interchangeable inbound
	fromAddress, err := (&AccountIDType{}).FromJSON(issuerAddressZero)
	require.NoError(err)
	fromHex, err := (&AccountIDType{}).FromJSON(strings.Repeat("00", 20))
	require.NoError(err)
	require.Equal(fromAddress.Bytes(), fromHex.Bytes())

	// outbound is always the classic address
	require.Equal(issuerAddressZero, fromHex.ToJSON())

	_, err = (&AccountIDType{}).FromJSON("not an address")
	require.ErrorIs(err, ErrMalformedInput)
}

func TestVector256(t *testing.T) {
	require := require.New(t)

	first := strings.Repeat("11", 32)
	second := strings.Repeat("22", 32)

	v, err := (&Vector256{}).FromJSON([]any{first, second})
	require.NoError(err)
	require.Len(v.Bytes(), 64)
	require.Equal([]any{first, second}, v.ToJSON())

	decoded, err := (&Vector256{}).FromParser(serdes.NewBinaryParser(v.Bytes()), 64)
	require.NoError(err)
	require.Equal(v.Bytes(), decoded.Bytes())

	_, err = (&Vector256{}).FromParser(serdes.NewBinaryParser(v.Bytes()), 63)
	require.ErrorIs(err, serdes.ErrInvalidEncoding)

	_, err = (&Vector256{}).FromJSON([]any{"AB"})
	require.ErrorIs(err, ErrMalformedInput)
}

func TestPathSetRoundTrip(t *testing.T) {
	require := require.New(t)

	pathsJSON := []any{
		[]any{
			map[string]any{"account": issuerAddressZero},
			map[string]any{"currency": "USD", "issuer": issuerAddressZero},
		},
		[]any{
			map[string]any{"currency": "XRP"},
		},
	}

	v, err := (&PathSet{}).FromJSON(pathsJSON)
	require.NoError(err)

	b := v.Bytes()
	// step flags, the path separator between paths, and the terminator
	require.Equal(byte(0x01), b[0])
	require.Equal(byte(0x30), b[1+20])
	require.Equal(byte(0xFF), b[1+20+1+40])
	require.Equal(byte(0x00), b[len(b)-1])

	p := serdes.NewBinaryParser(b)
	decoded, err := (&PathSet{}).FromParser(p, -1)
	require.NoError(err)
	require.False(p.HasMore())
	require.Equal(pathsJSON, decoded.ToJSON())
	require.Equal(b, decoded.Bytes())
}

func TestPathSetRejectsEmptyStep(t *testing.T) {
	_, err := (&PathSet{}).FromJSON([]any{[]any{map[string]any{}}})
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestPathSetLegacyTypeAnnotationsIgnored(t *testing.T) {
	require := require.New(t)

	annotated, err := (&PathSet{}).FromJSON([]any{[]any{
		map[string]any{"account": issuerAddressZero, "type": json.Number("1"), "type_hex": "01"},
	}})
	require.NoError(err)
	plain, err := (&PathSet{}).FromJSON([]any{[]any{
		map[string]any{"account": issuerAddressZero},
	}})
	require.NoError(err)
	require.Equal(plain.Bytes(), annotated.Bytes())
}

func TestPathSetRejectsUnknownStepFlags(t *testing.T) {
	_, err := (&PathSet{}).FromParser(serdes.NewBinaryParser([]byte{0x02, 0x00}), -1)
	require.ErrorIs(t, err, serdes.ErrInvalidEncoding)
}
