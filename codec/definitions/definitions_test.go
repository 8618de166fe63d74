// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package definitions

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeadersAreUnique(t *testing.T) {
	seen := make(map[FieldHeader]string, len(fields))
	for _, f := range fields {
		if prev, ok := seen[f.Header]; ok {
			t.Fatalf("header (%d, %d) assigned to both %q and %q",
				f.Header.TypeCode, f.Header.FieldCode, prev, f.Name)
		}
		seen[f.Header] = f.Name
	}
}

func TestNamesAreUnique(t *testing.T) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := seen[f.Name]; ok {
			t.Fatalf("field %q defined twice", f.Name)
		}
		seen[f.Name] = struct{}{}
	}
}

func TestLookups(t *testing.T) {
	require := require.New(t)
	defs := Get()

	f, ok := defs.FieldByName("Account")
	require.True(ok)
	require.Equal(FieldHeader{TypeCode: TypeAccountID, FieldCode: 1}, f.Header)
	require.True(f.IsVLEncoded)
	require.True(f.IsSigningField)

	byHeader, ok := defs.FieldByHeader(f.Header)
	require.True(ok)
	require.Equal(f, byHeader)

	_, ok = defs.FieldByName("NoSuchField")
	require.False(ok)
	_, ok = defs.FieldByHeader(FieldHeader{TypeCode: 15, FieldCode: 14})
	require.False(ok)
}

func TestUnserializedFieldsAreNotDecodable(t *testing.T) {
	require := require.New(t)
	defs := Get()

	f, ok := defs.FieldByName("hash")
	require.True(ok)
	require.False(f.IsSerialized)

	// an unserialized field never appears on the wire, so its header must
	// not resolve
	_, ok = defs.FieldByHeader(f.Header)
	require.False(ok)
}

func TestSigningFieldFlags(t *testing.T) {
	require := require.New(t)
	defs := Get()

	require.True(defs.IsSigningField("Account"))
	require.True(defs.IsSigningField("SigningPubKey"))
	require.False(defs.IsSigningField("TxnSignature"))
	require.False(defs.IsSigningField("Signers"))
	// unknown names default to non-signing, never an error
	require.False(defs.IsSigningField("NoSuchField"))
}

func TestHeaderCompare(t *testing.T) {
	require := require.New(t)

	a := FieldHeader{TypeCode: 1, FieldCode: 2}
	b := FieldHeader{TypeCode: 2, FieldCode: 1}
	require.Equal(-1, a.Compare(b))
	require.Equal(1, b.Compare(a))
	require.Equal(0, a.Compare(a))
	require.Equal(-1, a.Compare(FieldHeader{TypeCode: 1, FieldCode: 3}))
}

func TestEnumLookups(t *testing.T) {
	require := require.New(t)
	defs := Get()

	code, ok := defs.TransactionTypeCode("Payment")
	require.True(ok)
	require.Equal(int32(0), code)

	name, ok := defs.TransactionTypeName(0)
	require.True(ok)
	require.Equal("Payment", name)

	code, ok = defs.LedgerEntryTypeCode("AccountRoot")
	require.True(ok)
	require.Equal(int32(97), code)

	_, ok = defs.TransactionTypeCode("NoSuchTransaction")
	require.False(ok)
}

func TestConcurrentFirstAccess(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*Definitions, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Get()
		}(i)
	}
	wg.Wait()

	for _, d := range results {
		require.Same(t, results[0], d)
	}
}
