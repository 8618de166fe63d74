// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const currencyLen = 20

// nativeCurrency is the all-zero 160 bit code reserved for the native
// currency.
var nativeCurrency [currencyLen]byte

// currencyFromJSON converts a currency to its 160 bit form: a 3 character
// ISO-style code packed at bytes 12-14 of an otherwise zero field, or a 40
// character hex string passed through raw. "XRP" maps to the all-zero code.
func currencyFromJSON(value string) ([currencyLen]byte, error) {
	var out [currencyLen]byte

	if len(value) == 2*currencyLen {
		b, err := hex.DecodeString(value)
		if err != nil {
			return out, fmt.Errorf("%w: %s", ErrMalformedInput, err)
		}
		copy(out[:], b)
		return out, nil
	}

	if value == "XRP" {
		return out, nil
	}

	if len(value) != 3 {
		return out, fmt.Errorf("%w: currency %q is neither a 3 character code nor 160 bits of hex",
			ErrMalformedInput, value)
	}
	for i := 0; i < 3; i++ {
		c := value[i]
		if c < 0x21 || c > 0x7E {
			return out, fmt.Errorf("%w: currency %q contains non-printable characters", ErrMalformedInput, value)
		}
		out[12+i] = c
	}
	return out, nil
}

// currencyToJSON is the inverse of currencyFromJSON. Codes that do not fit
// the packed ISO layout come back as uppercase hex.
func currencyToJSON(value [currencyLen]byte) string {
	if value == nativeCurrency {
		return "XRP"
	}
	if isISOCurrency(value) {
		return string(value[12:15])
	}
	return strings.ToUpper(hex.EncodeToString(value[:]))
}

// isISOCurrency reports whether only the 3 ISO character positions are
// populated, with printable characters.
func isISOCurrency(value [currencyLen]byte) bool {
	for i, b := range value {
		switch {
		case i >= 12 && i <= 14:
			if b < 0x21 || b > 0x7E {
				return false
			}
		case b != 0:
			return false
		}
	}
	return true
}
