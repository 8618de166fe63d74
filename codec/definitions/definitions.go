// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package definitions holds the protocol's static field table: the mapping
// between field names and the (type code, field code) pairs that drive
// canonical ordering and field header encoding. The table is baked in at
// compile time, built once on first use, and never mutated.
package definitions

import "sync"

// Type codes for the serialized types the engine dispatches on.
const (
	TypeUInt16    int32 = 1
	TypeUInt32    int32 = 2
	TypeUInt64    int32 = 3
	TypeHash128   int32 = 4
	TypeHash256   int32 = 5
	TypeAmount    int32 = 6
	TypeBlob      int32 = 7
	TypeAccountID int32 = 8
	TypeSTObject  int32 = 14
	TypeSTArray   int32 = 15
	TypeUInt8     int32 = 16
	TypeHash160   int32 = 17
	TypePathSet   int32 = 18
	TypeVector256 int32 = 19
)

// FieldHeader identifies a field on the wire: the serialized type it
// belongs to and the code disambiguating fields of that type. Canonical
// field order is ascending (TypeCode, FieldCode).
type FieldHeader struct {
	TypeCode  int32
	FieldCode int32
}

// Compare orders headers canonically.
func (h FieldHeader) Compare(other FieldHeader) int {
	switch {
	case h.TypeCode != other.TypeCode:
		if h.TypeCode < other.TypeCode {
			return -1
		}
		return 1
	case h.FieldCode < other.FieldCode:
		return -1
	case h.FieldCode > other.FieldCode:
		return 1
	default:
		return 0
	}
}

// FieldInstance is the immutable registry record for one protocol field.
type FieldInstance struct {
	Name           string
	Header         FieldHeader
	IsVLEncoded    bool
	IsSigningField bool
	IsSerialized   bool
}

// Ordinal is the sort key for canonical field ordering.
func (f FieldInstance) Ordinal() int64 {
	return int64(f.Header.TypeCode)<<16 | int64(f.Header.FieldCode)
}

// Definitions is the loaded registry. All lookups are read-only and safe
// for concurrent use.
type Definitions struct {
	fieldsByName   map[string]FieldInstance
	fieldsByHeader map[FieldHeader]FieldInstance

	transactionTypes     map[string]int32
	transactionTypeNames map[int32]string
	ledgerEntryTypes     map[string]int32
	ledgerEntryTypeNames map[int32]string
}

var loadOnce = sync.OnceValue(load)

// Get returns the process-wide registry, building it on first use.
func Get() *Definitions {
	return loadOnce()
}

func load() *Definitions {
	d := &Definitions{
		fieldsByName:         make(map[string]FieldInstance, len(fields)),
		fieldsByHeader:       make(map[FieldHeader]FieldInstance, len(fields)),
		transactionTypes:     make(map[string]int32, len(transactionTypes)),
		transactionTypeNames: make(map[int32]string, len(transactionTypes)),
		ledgerEntryTypes:     make(map[string]int32, len(ledgerEntryTypes)),
		ledgerEntryTypeNames: make(map[int32]string, len(ledgerEntryTypes)),
	}
	for _, f := range fields {
		d.fieldsByName[f.Name] = f
		if f.IsSerialized {
			d.fieldsByHeader[f.Header] = f
		}
	}
	for name, code := range transactionTypes {
		d.transactionTypes[name] = code
		d.transactionTypeNames[code] = name
	}
	for name, code := range ledgerEntryTypes {
		d.ledgerEntryTypes[name] = code
		d.ledgerEntryTypeNames[code] = name
	}
	return d
}

// FieldByName looks a field up by its JSON name.
func (d *Definitions) FieldByName(name string) (FieldInstance, bool) {
	f, ok := d.fieldsByName[name]
	return f, ok
}

// FieldByHeader looks a serialized field up by its wire header.
func (d *Definitions) FieldByHeader(header FieldHeader) (FieldInstance, bool) {
	f, ok := d.fieldsByHeader[header]
	return f, ok
}

// IsSigningField reports whether [name] is included in signing payloads.
// Names absent from the registry are not signing fields.
func (d *Definitions) IsSigningField(name string) bool {
	f, ok := d.fieldsByName[name]
	return ok && f.IsSigningField
}

// TransactionTypeCode maps a symbolic transaction type name to its UInt16
// wire code.
func (d *Definitions) TransactionTypeCode(name string) (int32, bool) {
	code, ok := d.transactionTypes[name]
	return code, ok
}

// TransactionTypeName maps a UInt16 wire code back to its symbolic name.
func (d *Definitions) TransactionTypeName(code int32) (string, bool) {
	name, ok := d.transactionTypeNames[code]
	return name, ok
}

// LedgerEntryTypeCode maps a symbolic ledger entry type name to its UInt16
// wire code.
func (d *Definitions) LedgerEntryTypeCode(name string) (int32, bool) {
	code, ok := d.ledgerEntryTypes[name]
	return code, ok
}

// LedgerEntryTypeName maps a UInt16 wire code back to its symbolic name.
func (d *Definitions) LedgerEntryTypeName(code int32) (string, bool) {
	name, ok := d.ledgerEntryTypeNames[code]
	return name, ok
}
