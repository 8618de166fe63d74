// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const AccountIDLen = 20

// AccountIDEmpty is a useful all zero value
var AccountIDEmpty = AccountID{}

// AccountID wraps the 20 byte hash that identifies an account on the ledger.
type AccountID [AccountIDLen]byte

// ToAccountID attempts to convert a byte slice into an account id
func ToAccountID(bytes []byte) (AccountID, error) {
	id := AccountID{}
	if len(bytes) != AccountIDLen {
		return id, fmt.Errorf("expected %d bytes but got %d", AccountIDLen, len(bytes))
	}
	copy(id[:], bytes)
	return id, nil
}

// AccountIDFromHex is the inverse of AccountID.Hex()
func AccountIDFromHex(idStr string) (AccountID, error) {
	bytes, err := hex.DecodeString(idStr)
	if err != nil {
		return AccountID{}, err
	}
	return ToAccountID(bytes)
}

func (id AccountID) Bytes() []byte {
	return id[:]
}

// Hex returns the uppercase hex form of this account id
func (id AccountID) Hex() string {
	return strings.ToUpper(hex.EncodeToString(id[:]))
}

func (id AccountID) String() string {
	return id.Hex()
}
