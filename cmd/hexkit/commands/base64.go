// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/hexkit-project/hexkit/cmd/hexkit/cli"
	"github.com/hexkit-project/hexkit/lib/byteutil"
)

func base64Command() *cli.Command {
	return &cli.Command{
		Name:    "base64",
		Summary: "encode and decode Base64",
		Subcommands: []*cli.Command{
			base64EncodeCommand(),
			base64DecodeCommand(),
		},
	}
}

func base64EncodeCommand() *cli.Command {
	var configPath string
	var hexLiteral string
	var textLiteral string
	var urlSafe bool

	return &cli.Command{
		Name:    "encode",
		Summary: "encode bytes to Base64",
		Usage:   "hexkit base64 encode [file] [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to hexkit.yaml (default: $HEXKIT_CONFIG)")
			flags.StringVar(&hexLiteral, "hex", "", "input as a hex string instead of a file")
			flags.StringVar(&textLiteral, "text", "", "input as literal text instead of a file")
			flags.BoolVar(&urlSafe, "url", false, "use the URL-safe alphabet, unpadded")
			return flags
		},
		Run: func(args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			data, err := readInput(cfg, hexLiteral, textLiteral, args)
			if err != nil {
				return err
			}
			if urlSafe {
				fmt.Println(byteutil.Base64URLEncode(data))
			} else {
				fmt.Println(byteutil.Base64Encode(data))
			}
			return nil
		},
	}
}

func base64DecodeCommand() *cli.Command {
	var raw bool

	return &cli.Command{
		Name:    "decode",
		Summary: "decode Base64 text",
		Usage:   "hexkit base64 decode <text> [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			flags.BoolVar(&raw, "raw", false, "write decoded bytes to stdout instead of a hex dump line")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("want exactly one Base64 argument, got %d", len(args))
			}
			data, err := byteutil.Base64Decode(args[0])
			if err != nil {
				return err
			}
			if raw {
				if _, err := os.Stdout.Write(data); err != nil {
					return fmt.Errorf("writing decoded bytes: %w", err)
				}
				return nil
			}
			fmt.Println(byteutil.BytesToHex(data))
			return nil
		},
	}
}
