// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import "fmt"

const EntropyLen = 16

// Entropy wraps the 16 bytes of randomness a key seed is derived from.
type Entropy [EntropyLen]byte

// ToEntropy attempts to convert a byte slice into seed entropy
func ToEntropy(bytes []byte) (Entropy, error) {
	e := Entropy{}
	if len(bytes) != EntropyLen {
		return e, fmt.Errorf("expected %d bytes but got %d", EntropyLen, len(bytes))
	}
	copy(e[:], bytes)
	return e, nil
}

func (e Entropy) Bytes() []byte {
	return e[:]
}
