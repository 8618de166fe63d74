// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package addresses

import "errors"

var (
	ErrEncode           = errors.New("encode error")
	ErrDecode           = errors.New("decode error")
	ErrInvalidPrefix    = errors.New("invalid X-address: bad prefix")
	ErrUnsupported64Tag = errors.New("unsupported X-address: 64-bit tags are not supported")
	ErrNonZeroTagBytes  = errors.New("tag bytes in X-address must be 0 if the address has no tag")
	ErrDestroyed        = errors.New("seed has been destroyed")
	ErrUnknownVersion   = errors.New("version does not match any allowed version")
	ErrUnexpectedLength = errors.New("unexpected payload length")
)
