// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package definitions

// transactionTypes maps the symbolic transaction type names used on the
// JSON side to their UInt16 wire codes.
var transactionTypes = map[string]int32{
	"Payment":              0,
	"EscrowCreate":         1,
	"EscrowFinish":         2,
	"AccountSet":           3,
	"EscrowCancel":         4,
	"SetRegularKey":        5,
	"NickNameSet":          6,
	"OfferCreate":          7,
	"OfferCancel":          8,
	"Contract":             9,
	"TicketCreate":         10,
	"TicketCancel":         11,
	"SignerListSet":        12,
	"PaymentChannelCreate": 13,
	"PaymentChannelFund":   14,
	"PaymentChannelClaim":  15,
	"CheckCreate":          16,
	"CheckCash":            17,
	"CheckCancel":          18,
	"DepositPreauth":       19,
	"TrustSet":             20,
	"AccountDelete":        21,
	"EnableAmendment":      100,
	"SetFee":               101,
	"UNLModify":            102,
}

// ledgerEntryTypes maps ledger entry type names to their UInt16 wire codes.
// The codes are the ASCII values historically assigned by the protocol.
var ledgerEntryTypes = map[string]int32{
	"AccountRoot":    97,
	"DirectoryNode":  100,
	"RippleState":    114,
	"Ticket":         84,
	"SignerList":     83,
	"Offer":          111,
	"LedgerHashes":   104,
	"Amendments":     102,
	"FeeSettings":    115,
	"Escrow":         117,
	"PaymentChannel": 120,
	"Check":          67,
	"DepositPreauth": 112,
}
