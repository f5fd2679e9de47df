// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

// hexkit is the command-line entry point to the toolkit: hex dumps,
// digests, UUID generation, Base64, and CBOR inspection. See
// `hexkit --help` for the command tree; the interactive viewer lives
// in the separate hexkit-viewer binary.
package main

import (
	"fmt"
	"os"

	"github.com/hexkit-project/hexkit/cmd/hexkit/commands"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return commands.Root().Execute(os.Args[1:])
}
