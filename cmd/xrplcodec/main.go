// Copyright (C) 2022-2025, XDVSF, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// xrplcodec converts ledger transactions between their JSON form and the
// canonical binary encoding, from the command line. Input is read from the
// positional argument, or stdin when absent.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/xdvsf/xrpl4j/codec"
)

const (
	ModeKey   = "mode"
	SignerKey = "signer"
)

func main() {
	fs := pflag.NewFlagSet("xrplcodec", pflag.ContinueOnError)
	mode := fs.String(ModeKey, "encode", "One of encode, decode, sign, multisign.")
	signer := fs.String(SignerKey, "", "Signer's classic address; required by multisign.")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	input, err := readInput(fs.Args())
	if err != nil {
		logger.Fatal("failed to read input", zap.Error(err))
	}

	c := codec.New()
	var out string
	switch *mode {
	case "encode":
		out, err = c.Encode(input)
	case "decode":
		out, err = c.Decode(input)
	case "sign":
		out, err = c.EncodeForSigning(input)
	case "multisign":
		if *signer == "" {
			logger.Fatal("multisign requires --signer")
		}
		out, err = c.EncodeForMultiSigning(input, *signer)
	default:
		logger.Fatal("unknown mode", zap.String("mode", *mode))
	}
	if err != nil {
		logger.Fatal("conversion failed", zap.String("mode", *mode), zap.Error(err))
	}

	fmt.Println(out)
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
