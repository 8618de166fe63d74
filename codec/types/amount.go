// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/xdvsf/xrpl4j/addresses"
	"github.com/xdvsf/xrpl4j/codec/serdes"
	"github.com/xdvsf/xrpl4j/ids"
)

// Amount wire layout. The top bit of byte 0 discriminates native (0) from
// issued (1). Native amounts are 8 bytes: the sign bit is reserved zero and
// the low 62 bits carry the drop count. Issued amounts are 48 bytes: a
// packed sign/exponent/mantissa u64, then the 160 bit currency code, then
// the 20 byte issuer account id.
const (
	nativeAmountLength = 8
	issuedAmountLength = 48

	issuedBit   = uint64(1) << 63
	positiveBit = uint64(1) << 62

	mantissaMask = (uint64(1) << 54) - 1

	minMantissa = 1_000_000_000_000_000  // 1e15
	maxMantissa = 9_999_999_999_999_999 // 1e16 - 1
	minExponent = -96
	maxExponent = 80
	maxPrecision = 16

	// maxDrops is one hundred billion native units, expressed in drops.
	maxDrops = 100_000_000_000_000_000
)

// Amount is either a native drop count or an issued-currency value.
type Amount struct {
	value []byte
}

func (*Amount) FromJSON(value any) (SerializedType, error) {
	switch v := value.(type) {
	case string:
		return nativeAmountFromJSON(v)
	case map[string]any:
		return issuedAmountFromJSON(v)
	default:
		return nil, fmt.Errorf("%w: expected drops string or issued amount object, got %T",
			ErrMalformedInput, value)
	}
}

func nativeAmountFromJSON(value string) (SerializedType, error) {
	drops, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a drop count", ErrMalformedInput, value)
	}
	if drops > maxDrops {
		return nil, fmt.Errorf("%w: %d drops exceeds maximum of %d", ErrMalformedInput, drops, maxDrops)
	}
	b := make([]byte, nativeAmountLength)
	binary.BigEndian.PutUint64(b, drops)
	return &Amount{value: b}, nil
}

func issuedAmountFromJSON(value map[string]any) (SerializedType, error) {
	currencyStr, ok := value["currency"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: issued amount requires a currency", ErrMalformedInput)
	}
	issuerStr, ok := value["issuer"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: issued amount requires an issuer", ErrMalformedInput)
	}
	valueStr, ok := value["value"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: issued amount requires a string value", ErrMalformedInput)
	}

	negative, mantissa, exponent, err := parseIssuedValue(valueStr)
	if err != nil {
		return nil, err
	}

	var packed uint64
	if mantissa == 0 {
		// zero uses the reserved all-zero-mantissa encoding: only the
		// issued bit is set, regardless of sign or exponent.
		packed = issuedBit
	} else {
		packed = issuedBit | uint64(exponent-minExponent+1)<<54 | mantissa
		if !negative {
			packed |= positiveBit
		}
	}

	currency, err := currencyFromJSON(currencyStr)
	if err != nil {
		return nil, err
	}
	issuer, err := addresses.DecodeAccountID(issuerStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
	}

	b := make([]byte, 0, issuedAmountLength)
	b = binary.BigEndian.AppendUint64(b, packed)
	b = append(b, currency[:]...)
	b = append(b, issuer.Bytes()...)
	return &Amount{value: b}, nil
}

// parseIssuedValue parses a decimal string (optionally signed, optionally
// with a fraction and an e-notation exponent) into the normalized
// mantissa/exponent form: mantissa in [1e15, 1e16) and exponent in
// [-96, 80], or mantissa 0 for zero.
func parseIssuedValue(value string) (negative bool, mantissa uint64, exponent int, err error) {
	s := value
	if s == "" {
		return false, 0, 0, fmt.Errorf("%w: empty issued amount value", ErrMalformedInput)
	}

	if s[0] == '-' {
		negative = true
		s = s[1:]
	} else if s[0] == '+' {
		s = s[1:]
	}

	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, convErr := strconv.Atoi(s[i+1:])
		if convErr != nil {
			return false, 0, 0, fmt.Errorf("%w: bad exponent in %q", ErrMalformedInput, value)
		}
		exponent = e
		s = s[:i]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return false, 0, 0, fmt.Errorf("%w: %q is not a decimal number", ErrMalformedInput, value)
		}
	}
	digits := intPart + fracPart
	if digits == "" || !isDigits(digits) {
		return false, 0, 0, fmt.Errorf("%w: %q is not a decimal number", ErrMalformedInput, value)
	}
	exponent -= len(fracPart)

	// normalize the digit string: no leading or trailing zeros.
	digits = strings.TrimLeft(digits, "0")
	trimmed := strings.TrimRight(digits, "0")
	exponent += len(digits) - len(trimmed)
	digits = trimmed

	if digits == "" {
		return false, 0, 0, nil // zero
	}
	if len(digits) > maxPrecision {
		return false, 0, 0, fmt.Errorf("%w: %q exceeds %d significant digits",
			ErrMalformedInput, value, maxPrecision)
	}

	mantissa, err = strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return false, 0, 0, fmt.Errorf("%w: %s", ErrMalformedInput, err)
	}
	for mantissa < minMantissa {
		mantissa *= 10
		exponent--
	}

	if exponent < minExponent || exponent > maxExponent {
		return false, 0, 0, fmt.Errorf("%w: exponent of %q out of range", ErrMalformedInput, value)
	}
	return negative, mantissa, exponent, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (*Amount) FromParser(p *serdes.BinaryParser, _ int) (SerializedType, error) {
	first, err := p.Peek()
	if err != nil {
		return nil, err
	}

	length := nativeAmountLength
	if first&0x80 != 0 {
		length = issuedAmountLength
	}
	b, err := p.ReadBytes(length)
	if err != nil {
		return nil, err
	}

	packed := binary.BigEndian.Uint64(b[:8])
	if length == nativeAmountLength {
		if packed&positiveBit != 0 {
			return nil, fmt.Errorf("%w: reserved sign bit set on native amount", serdes.ErrInvalidEncoding)
		}
	} else if packed&mantissaMask != 0 {
		exponent := int(packed>>54&0xFF) + minExponent - 1
		if exponent < minExponent || exponent > maxExponent {
			return nil, fmt.Errorf("%w: issued amount exponent %d out of range", serdes.ErrInvalidEncoding, exponent)
		}
		mantissa := packed & mantissaMask
		if mantissa < minMantissa || mantissa > maxMantissa {
			return nil, fmt.Errorf("%w: issued amount mantissa %d out of range", serdes.ErrInvalidEncoding, mantissa)
		}
	}

	value := make([]byte, length)
	copy(value, b)
	return &Amount{value: value}, nil
}

func (t *Amount) ToJSON() any {
	packed := binary.BigEndian.Uint64(t.value[:8])

	if packed&issuedBit == 0 {
		return strconv.FormatUint(packed, 10)
	}

	var currency [currencyLen]byte
	copy(currency[:], t.value[8:28])
	issuer, _ := ids.ToAccountID(t.value[28:48])

	issuerAddress, err := addresses.EncodeAccountID(issuer)
	if err != nil {
		panic(err) // issuer is always exactly 20 bytes here
	}

	return map[string]any{
		"currency": currencyToJSON(currency),
		"issuer":   issuerAddress,
		"value":    formatIssuedValue(packed),
	}
}

// formatIssuedValue renders the packed sign/exponent/mantissa as a plain
// decimal string with no exponent notation and no trailing fraction zeros.
func formatIssuedValue(packed uint64) string {
	mantissa := packed & mantissaMask
	if mantissa == 0 {
		return "0"
	}
	exponent := int(packed>>54&0xFF) + minExponent - 1
	negative := packed&positiveBit == 0

	digits := strconv.FormatUint(mantissa, 10)
	var out string
	switch {
	case exponent >= 0:
		out = digits + strings.Repeat("0", exponent)
	case -exponent < len(digits):
		point := len(digits) + exponent
		out = strings.TrimRight(digits[point:], "0")
		if out == "" {
			out = digits[:point]
		} else {
			out = digits[:point] + "." + out
		}
	default:
		out = "0." + strings.Repeat("0", -exponent-len(digits)) + strings.TrimRight(digits, "0")
	}

	if negative {
		out = "-" + out
	}
	return out
}

func (t *Amount) Bytes() []byte {
	return t.value
}
