// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serdes

import "errors"

var (
	ErrTruncatedInput  = errors.New("unexpected end of input")
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrUnknownField    = errors.New("unknown field")
)
