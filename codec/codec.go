// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codec is the canonical binary codec for the ledger's transaction
// and object model. Given a JSON representation it produces the
// deterministic, byte-exact binary encoding the network hashes, signs and
// verifies, independent of input field ordering, and the inverse decoding.
package codec

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xdvsf/xrpl4j/addresses"
	"github.com/xdvsf/xrpl4j/codec/definitions"
	"github.com/xdvsf/xrpl4j/codec/serdes"
	"github.com/xdvsf/xrpl4j/codec/types"
)

// Signing domain prefixes, prepended to signing payloads so a signature
// over one domain can never validate in another.
const (
	// SignaturePrefix starts every single-signature payload ("STX\0").
	SignaturePrefix = "53545800"

	// MultiSignaturePrefix starts every multi-signature payload ("SMT\0").
	MultiSignaturePrefix = "534D5400"
)

// signingPubKeyField is forced empty in multi-sign payloads: an existing
// signing key must never be part of what the signers sign.
const signingPubKeyField = "SigningPubKey"

// Sentinel errors, re-exported from the packages that raise them so callers
// only need this package on the error path.
var (
	ErrMalformedInput  = types.ErrMalformedInput
	ErrTruncatedInput  = serdes.ErrTruncatedInput
	ErrInvalidEncoding = serdes.ErrInvalidEncoding
	ErrUnknownField    = serdes.ErrUnknownField

	ErrInvalidArgument = errors.New("invalid argument")
)

// Codec encodes and decodes between the JSON and canonical binary forms.
// It is stateless apart from the shared read-only field registry and safe
// for concurrent use.
type Codec struct {
	defs *definitions.Definitions
}

func New() *Codec {
	return &Codec{defs: definitions.Get()}
}

// Encode converts [jsonText] to its canonical binary form, as uppercase hex.
func (c *Codec) Encode(jsonText string) (string, error) {
	node, err := parseJSON(jsonText)
	if err != nil {
		return "", err
	}
	return c.encodeNode(node)
}

// Decode converts canonical binary [hexText] (case-insensitive) back to its
// JSON form. The whole buffer must decode; trailing bytes are an error.
func (c *Codec) Decode(hexText string) (string, error) {
	raw, err := hex.DecodeString(hexText)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, err)
	}

	p := serdes.NewBinaryParser(raw)
	object, err := (&types.STObject{}).FromParser(p, -1)
	if err != nil {
		return "", err
	}
	if p.HasMore() {
		return "", fmt.Errorf("%w: %d trailing bytes after top-level object", ErrInvalidEncoding, p.Remaining())
	}

	out, err := json.Marshal(object.ToJSON())
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeForSigning encodes the signing fields of [jsonText] under the
// single-signature domain prefix.
func (c *Codec) EncodeForSigning(jsonText string) (string, error) {
	node, err := parseJSON(jsonText)
	if err != nil {
		return "", err
	}

	encoded, err := c.encodeNode(c.removeNonSigningFields(node))
	if err != nil {
		return "", err
	}
	return SignaturePrefix + encoded, nil
}

// EncodeForMultiSigning encodes the signing fields of [jsonText] under the
// multi-signature domain prefix, with the signing public key forced empty
// and the raw 20 byte account id of [signerAddress] appended as a suffix.
func (c *Codec) EncodeForMultiSigning(jsonText, signerAddress string) (string, error) {
	node, err := parseJSON(jsonText)
	if err != nil {
		return "", err
	}
	object, ok := node.(map[string]any)
	if !ok {
		return "", fmt.Errorf("%w: JSON object required for signing", ErrInvalidArgument)
	}

	// any existing signing key must not also be signed
	object[signingPubKeyField] = ""

	signerAccountID, err := addresses.DecodeAccountID(signerAddress)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}

	encoded, err := c.encodeNode(c.removeNonSigningFields(object))
	if err != nil {
		return "", err
	}
	return MultiSignaturePrefix + encoded + signerAccountID.Hex(), nil
}

func (c *Codec) encodeNode(node any) (string, error) {
	object, err := (&types.STObject{}).FromJSON(node)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(object.Bytes())), nil
}

// removeNonSigningFields retains only the first-level fields whose registry
// metadata marks them as signing fields; names absent from the registry are
// dropped. The filter is deliberately shallow: nested objects and array
// members are kept or dropped whole on their top-level field's flag, never
// filtered internally. Wire compatibility depends on this behavior.
func (c *Codec) removeNonSigningFields(node any) any {
	object, ok := node.(map[string]any)
	if !ok {
		// field filtering works on JSON field names; non-objects carry
		// none and pass through untouched.
		return node
	}

	signingFields := make(map[string]any, len(object))
	for name, value := range object {
		if c.defs.IsSigningField(name) {
			signingFields[name] = value
		}
	}
	return signingFields
}

func parseJSON(jsonText string) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader([]byte(jsonText)))
	decoder.UseNumber()

	var node any
	if err := decoder.Decode(&node); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
	}
	return node, nil
}
