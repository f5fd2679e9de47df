// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/pflag"

	"github.com/hexkit-project/hexkit/cmd/hexkit/cli"
)

func cborCommand() *cli.Command {
	var configPath string
	var hexLiteral string

	return &cli.Command{
		Name:    "cbor",
		Summary: "decode CBOR to diagnostic notation",
		Usage:   "hexkit cbor [file] [flags]",
		Examples: []cli.Example{
			{Description: "inspect a CBOR literal", Command: "hexkit cbor --hex a201020304"},
			{Description: "inspect a CBOR file", Command: "hexkit cbor payload.cbor"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("cbor", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to hexkit.yaml (default: $HEXKIT_CONFIG)")
			flags.StringVar(&hexLiteral, "hex", "", "input as a hex string instead of a file")
			return flags
		},
		Run: func(args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			data, err := readInput(cfg, hexLiteral, "", args)
			if err != nil {
				return err
			}
			notation, err := cbor.Diagnose(data)
			if err != nil {
				return fmt.Errorf("decoding CBOR: %w", err)
			}
			fmt.Println(notation)
			return nil
		},
	}
}
