// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package definitions

// field builds one registry row. [serialized] is false for bookkeeping
// pseudo-fields that never appear on the wire.
func field(name string, typeCode, fieldCode int32, vl, signing, serialized bool) FieldInstance {
	return FieldInstance{
		Name:           name,
		Header:         FieldHeader{TypeCode: typeCode, FieldCode: fieldCode},
		IsVLEncoded:    vl,
		IsSigningField: signing,
		IsSerialized:   serialized,
	}
}

// fields is the protocol's field table, as assigned by the network's
// definitions. (TypeCode, FieldCode) pairs are unique; the loader indexes
// them both ways.
var fields = []FieldInstance{
	// UInt16
	field("LedgerEntryType", TypeUInt16, 1, false, true, true),
	field("TransactionType", TypeUInt16, 2, false, true, true),
	field("SignerWeight", TypeUInt16, 3, false, true, true),
	field("TransferFee", TypeUInt16, 4, false, true, true),

	// UInt32
	field("Flags", TypeUInt32, 2, false, true, true),
	field("SourceTag", TypeUInt32, 3, false, true, true),
	field("Sequence", TypeUInt32, 4, false, true, true),
	field("PreviousTxnLgrSeq", TypeUInt32, 5, false, true, true),
	field("LedgerSequence", TypeUInt32, 6, false, true, true),
	field("CloseTime", TypeUInt32, 7, false, true, true),
	field("ParentCloseTime", TypeUInt32, 8, false, true, true),
	field("SigningTime", TypeUInt32, 9, false, true, true),
	field("Expiration", TypeUInt32, 10, false, true, true),
	field("TransferRate", TypeUInt32, 11, false, true, true),
	field("WalletSize", TypeUInt32, 12, false, true, true),
	field("OwnerCount", TypeUInt32, 13, false, true, true),
	field("DestinationTag", TypeUInt32, 14, false, true, true),
	field("HighQualityIn", TypeUInt32, 16, false, true, true),
	field("HighQualityOut", TypeUInt32, 17, false, true, true),
	field("LowQualityIn", TypeUInt32, 18, false, true, true),
	field("LowQualityOut", TypeUInt32, 19, false, true, true),
	field("QualityIn", TypeUInt32, 20, false, true, true),
	field("QualityOut", TypeUInt32, 21, false, true, true),
	field("StampEscrow", TypeUInt32, 22, false, true, true),
	field("BondAmount", TypeUInt32, 23, false, true, true),
	field("LoadFee", TypeUInt32, 24, false, true, true),
	field("OfferSequence", TypeUInt32, 25, false, true, true),
	field("FirstLedgerSequence", TypeUInt32, 26, false, true, true),
	field("LastLedgerSequence", TypeUInt32, 27, false, true, true),
	field("TransactionIndex", TypeUInt32, 28, false, true, true),
	field("OperationLimit", TypeUInt32, 29, false, true, true),
	field("ReferenceFeeUnits", TypeUInt32, 30, false, true, true),
	field("ReserveBase", TypeUInt32, 31, false, true, true),
	field("ReserveIncrement", TypeUInt32, 32, false, true, true),
	field("SetFlag", TypeUInt32, 33, false, true, true),
	field("ClearFlag", TypeUInt32, 34, false, true, true),
	field("SignerQuorum", TypeUInt32, 35, false, true, true),
	field("CancelAfter", TypeUInt32, 36, false, true, true),
	field("FinishAfter", TypeUInt32, 37, false, true, true),
	field("SignerListID", TypeUInt32, 38, false, true, true),
	field("SettleDelay", TypeUInt32, 39, false, true, true),

	// UInt64
	field("IndexNext", TypeUInt64, 1, false, true, true),
	field("IndexPrevious", TypeUInt64, 2, false, true, true),
	field("BookNode", TypeUInt64, 3, false, true, true),
	field("OwnerNode", TypeUInt64, 4, false, true, true),
	field("BaseFee", TypeUInt64, 5, false, true, true),
	field("ExchangeRate", TypeUInt64, 6, false, true, true),
	field("LowNode", TypeUInt64, 7, false, true, true),
	field("HighNode", TypeUInt64, 8, false, true, true),
	field("DestinationNode", TypeUInt64, 9, false, true, true),
	field("Cookie", TypeUInt64, 10, false, true, true),

	// Hash128
	field("EmailHash", TypeHash128, 1, false, true, true),

	// Hash256
	field("LedgerHash", TypeHash256, 1, false, true, true),
	field("ParentHash", TypeHash256, 2, false, true, true),
	field("TransactionHash", TypeHash256, 3, false, true, true),
	field("AccountHash", TypeHash256, 4, false, true, true),
	field("PreviousTxnID", TypeHash256, 5, false, true, true),
	field("LedgerIndex", TypeHash256, 6, false, true, true),
	field("WalletLocator", TypeHash256, 7, false, true, true),
	field("RootIndex", TypeHash256, 8, false, true, true),
	field("AccountTxnID", TypeHash256, 9, false, true, true),
	field("BookDirectory", TypeHash256, 16, false, true, true),
	field("InvoiceID", TypeHash256, 17, false, true, true),
	field("Nickname", TypeHash256, 18, false, true, true),
	field("Amendment", TypeHash256, 19, false, true, true),
	field("TicketID", TypeHash256, 20, false, true, true),
	field("Digest", TypeHash256, 21, false, true, true),
	field("Channel", TypeHash256, 22, false, true, true),
	field("ConsensusHash", TypeHash256, 23, false, true, true),
	field("CheckID", TypeHash256, 24, false, true, true),
	field("ValidatedHash", TypeHash256, 25, false, true, true),
	// bookkeeping pseudo-fields; present in JSON responses but never
	// serialized and never signed.
	field("hash", TypeHash256, 257, false, false, false),
	field("index", TypeHash256, 258, false, false, false),

	// Amount
	field("Amount", TypeAmount, 1, false, true, true),
	field("Balance", TypeAmount, 2, false, true, true),
	field("LimitAmount", TypeAmount, 3, false, true, true),
	field("TakerPays", TypeAmount, 4, false, true, true),
	field("TakerGets", TypeAmount, 5, false, true, true),
	field("LowLimit", TypeAmount, 6, false, true, true),
	field("HighLimit", TypeAmount, 7, false, true, true),
	field("Fee", TypeAmount, 8, false, true, true),
	field("SendMax", TypeAmount, 9, false, true, true),
	field("DeliverMin", TypeAmount, 10, false, true, true),
	field("MinimumOffer", TypeAmount, 16, false, true, true),
	field("RippleEscrow", TypeAmount, 17, false, true, true),
	field("DeliveredAmount", TypeAmount, 18, false, true, true),

	// Blob
	field("PublicKey", TypeBlob, 1, true, true, true),
	field("MessageKey", TypeBlob, 2, true, true, true),
	field("SigningPubKey", TypeBlob, 3, true, true, true),
	field("TxnSignature", TypeBlob, 4, true, false, true),
	field("Generator", TypeBlob, 5, true, true, true),
	field("Signature", TypeBlob, 6, true, false, true),
	field("Domain", TypeBlob, 7, true, true, true),
	field("FundCode", TypeBlob, 8, true, true, true),
	field("RemoveCode", TypeBlob, 9, true, true, true),
	field("ExpireCode", TypeBlob, 10, true, true, true),
	field("CreateCode", TypeBlob, 11, true, true, true),
	field("MemoType", TypeBlob, 12, true, true, true),
	field("MemoData", TypeBlob, 13, true, true, true),
	field("MemoFormat", TypeBlob, 14, true, true, true),
	field("Fulfillment", TypeBlob, 16, true, true, true),
	field("Condition", TypeBlob, 17, true, true, true),
	field("MasterSignature", TypeBlob, 18, true, false, true),

	// AccountID
	field("Account", TypeAccountID, 1, true, true, true),
	field("Owner", TypeAccountID, 2, true, true, true),
	field("Destination", TypeAccountID, 3, true, true, true),
	field("Issuer", TypeAccountID, 4, true, true, true),
	field("Authorize", TypeAccountID, 5, true, true, true),
	field("Unauthorize", TypeAccountID, 6, true, true, true),
	field("Target", TypeAccountID, 7, true, true, true),
	field("RegularKey", TypeAccountID, 8, true, true, true),

	// STObject
	field("ObjectEndMarker", TypeSTObject, 1, false, true, true),
	field("TransactionMetaData", TypeSTObject, 2, false, true, true),
	field("CreatedNode", TypeSTObject, 3, false, true, true),
	field("DeletedNode", TypeSTObject, 4, false, true, true),
	field("ModifiedNode", TypeSTObject, 5, false, true, true),
	field("PreviousFields", TypeSTObject, 6, false, true, true),
	field("FinalFields", TypeSTObject, 7, false, true, true),
	field("NewFields", TypeSTObject, 8, false, true, true),
	field("TemplateEntry", TypeSTObject, 9, false, true, true),
	field("Memo", TypeSTObject, 10, false, true, true),
	field("SignerEntry", TypeSTObject, 11, false, true, true),
	field("Signer", TypeSTObject, 16, false, true, true),
	field("Majority", TypeSTObject, 18, false, true, true),

	// STArray
	field("ArrayEndMarker", TypeSTArray, 1, false, true, true),
	field("Signers", TypeSTArray, 3, false, false, true),
	field("SignerEntries", TypeSTArray, 4, false, true, true),
	field("Template", TypeSTArray, 5, false, true, true),
	field("Necessary", TypeSTArray, 6, false, true, true),
	field("Sufficient", TypeSTArray, 7, false, true, true),
	field("AffectedNodes", TypeSTArray, 8, false, true, true),
	field("Memos", TypeSTArray, 9, false, true, true),
	field("Majorities", TypeSTArray, 16, false, true, true),

	// UInt8
	field("CloseResolution", TypeUInt8, 1, false, true, true),
	field("Method", TypeUInt8, 2, false, true, true),
	field("TransactionResult", TypeUInt8, 3, false, true, true),
	field("TickSize", TypeUInt8, 16, false, true, true),

	// Hash160
	field("TakerPaysCurrency", TypeHash160, 1, false, true, true),
	field("TakerPaysIssuer", TypeHash160, 2, false, true, true),
	field("TakerGetsCurrency", TypeHash160, 3, false, true, true),
	field("TakerGetsIssuer", TypeHash160, 4, false, true, true),

	// PathSet
	field("Paths", TypePathSet, 1, false, true, true),

	// Vector256
	field("Indexes", TypeVector256, 1, true, true, true),
	field("Hashes", TypeVector256, 2, true, true, true),
	field("Amendments", TypeVector256, 3, true, true, true),
}
