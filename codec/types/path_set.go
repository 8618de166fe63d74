// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"

	"github.com/xdvsf/xrpl4j/addresses"
	"github.com/xdvsf/xrpl4j/codec/serdes"
	"github.com/xdvsf/xrpl4j/ids"
)

// Path step component flags, a path separator, and the path set terminator.
const (
	stepAccount  = 0x01
	stepCurrency = 0x10
	stepIssuer   = 0x20

	pathSeparator = 0xFF
	pathSetEnd    = 0x00
)

// pathStep is one hop in a payment path. Components are optional; the flags
// byte records which are present.
type pathStep struct {
	account  *ids.AccountID
	currency *[currencyLen]byte
	issuer   *ids.AccountID
}

// PathSet is a sequence of payment paths, each a sequence of steps.
type PathSet struct {
	paths [][]pathStep
}

func (*PathSet) FromJSON(value any) (SerializedType, error) {
	array, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected array of paths, got %T", ErrMalformedInput, value)
	}

	paths := make([][]pathStep, 0, len(array))
	for _, pathJSON := range array {
		stepsJSON, ok := pathJSON.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected array of path steps, got %T", ErrMalformedInput, pathJSON)
		}
		steps := make([]pathStep, 0, len(stepsJSON))
		for _, stepJSON := range stepsJSON {
			step, err := pathStepFromJSON(stepJSON)
			if err != nil {
				return nil, err
			}
			steps = append(steps, step)
		}
		paths = append(paths, steps)
	}
	return &PathSet{paths: paths}, nil
}

func pathStepFromJSON(value any) (pathStep, error) {
	object, ok := value.(map[string]any)
	if !ok {
		return pathStep{}, fmt.Errorf("%w: expected path step object, got %T", ErrMalformedInput, value)
	}

	var step pathStep
	if account, ok := object["account"]; ok {
		s, ok := account.(string)
		if !ok {
			return pathStep{}, fmt.Errorf("%w: path step account must be a string", ErrMalformedInput)
		}
		id, err := addresses.DecodeAccountID(s)
		if err != nil {
			return pathStep{}, fmt.Errorf("%w: %s", ErrMalformedInput, err)
		}
		step.account = &id
	}
	if currency, ok := object["currency"]; ok {
		s, ok := currency.(string)
		if !ok {
			return pathStep{}, fmt.Errorf("%w: path step currency must be a string", ErrMalformedInput)
		}
		c, err := currencyFromJSON(s)
		if err != nil {
			return pathStep{}, err
		}
		step.currency = &c
	}
	if issuer, ok := object["issuer"]; ok {
		s, ok := issuer.(string)
		if !ok {
			return pathStep{}, fmt.Errorf("%w: path step issuer must be a string", ErrMalformedInput)
		}
		id, err := addresses.DecodeAccountID(s)
		if err != nil {
			return pathStep{}, fmt.Errorf("%w: %s", ErrMalformedInput, err)
		}
		step.issuer = &id
	}
	// "type" and "type_hex" are legacy annotations; they are derived from
	// the components above and ignored inbound.

	if step.account == nil && step.currency == nil && step.issuer == nil {
		return pathStep{}, fmt.Errorf("%w: empty path step", ErrMalformedInput)
	}
	return step, nil
}

func (*PathSet) FromParser(p *serdes.BinaryParser, _ int) (SerializedType, error) {
	var paths [][]pathStep
	var steps []pathStep
	for {
		flags, err := p.ReadByte()
		if err != nil {
			return nil, err
		}
		switch flags {
		case pathSetEnd:
			if len(steps) > 0 {
				paths = append(paths, steps)
			}
			return &PathSet{paths: paths}, nil
		case pathSeparator:
			paths = append(paths, steps)
			steps = nil
		default:
			step, err := pathStepFromParser(p, flags)
			if err != nil {
				return nil, err
			}
			steps = append(steps, step)
		}
	}
}

func pathStepFromParser(p *serdes.BinaryParser, flags byte) (pathStep, error) {
	if flags&^byte(stepAccount|stepCurrency|stepIssuer) != 0 {
		return pathStep{}, fmt.Errorf("%w: invalid path step flags %#x", serdes.ErrInvalidEncoding, flags)
	}

	var step pathStep
	if flags&stepAccount != 0 {
		b, err := p.ReadBytes(ids.AccountIDLen)
		if err != nil {
			return pathStep{}, err
		}
		id, err := ids.ToAccountID(b)
		if err != nil {
			return pathStep{}, err
		}
		step.account = &id
	}
	if flags&stepCurrency != 0 {
		b, err := p.ReadBytes(currencyLen)
		if err != nil {
			return pathStep{}, err
		}
		var c [currencyLen]byte
		copy(c[:], b)
		step.currency = &c
	}
	if flags&stepIssuer != 0 {
		b, err := p.ReadBytes(ids.AccountIDLen)
		if err != nil {
			return pathStep{}, err
		}
		id, err := ids.ToAccountID(b)
		if err != nil {
			return pathStep{}, err
		}
		step.issuer = &id
	}
	return step, nil
}

func (t *PathSet) ToJSON() any {
	paths := make([]any, len(t.paths))
	for i, steps := range t.paths {
		stepsJSON := make([]any, len(steps))
		for j, step := range steps {
			object := make(map[string]any, 3)
			if step.account != nil {
				address, err := addresses.EncodeAccountID(*step.account)
				if err != nil {
					panic(err) // step accounts are always exactly 20 bytes
				}
				object["account"] = address
			}
			if step.currency != nil {
				object["currency"] = currencyToJSON(*step.currency)
			}
			if step.issuer != nil {
				address, err := addresses.EncodeAccountID(*step.issuer)
				if err != nil {
					panic(err)
				}
				object["issuer"] = address
			}
			stepsJSON[j] = object
		}
		paths[i] = stepsJSON
	}
	return paths
}

func (t *PathSet) Bytes() []byte {
	var out []byte
	for i, steps := range t.paths {
		if i > 0 {
			out = append(out, pathSeparator)
		}
		for _, step := range steps {
			flags := byte(0)
			if step.account != nil {
				flags |= stepAccount
			}
			if step.currency != nil {
				flags |= stepCurrency
			}
			if step.issuer != nil {
				flags |= stepIssuer
			}
			out = append(out, flags)
			if step.account != nil {
				out = append(out, step.account.Bytes()...)
			}
			if step.currency != nil {
				out = append(out, step.currency[:]...)
			}
			if step.issuer != nil {
				out = append(out, step.issuer.Bytes()...)
			}
		}
	}
	return append(out, pathSetEnd)
}
