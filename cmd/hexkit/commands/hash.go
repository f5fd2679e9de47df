// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/hexkit-project/hexkit/cmd/hexkit/cli"
	"github.com/hexkit-project/hexkit/lib/byteutil"
	"github.com/hexkit-project/hexkit/lib/digest"
)

func hashCommand() *cli.Command {
	var configPath string
	var algorithmName string
	var hexLiteral string
	var textLiteral string
	var list bool

	return &cli.Command{
		Name:    "hash",
		Summary: "compute a message digest",
		Usage:   "hexkit hash [file] [flags]",
		Examples: []cli.Example{
			{Description: "SHA-256 of a file", Command: "hexkit hash release.tar.gz"},
			{Description: "SHA-1 of literal text", Command: "hexkit hash --algorithm sha1 --text 'hello'"},
			{Description: "list available algorithms", Command: "hexkit hash --list"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("hash", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to hexkit.yaml (default: $HEXKIT_CONFIG)")
			flags.StringVarP(&algorithmName, "algorithm", "a", "sha256", "digest algorithm")
			flags.StringVar(&hexLiteral, "hex", "", "input as a hex string instead of a file")
			flags.StringVar(&textLiteral, "text", "", "input as literal text instead of a file")
			flags.BoolVar(&list, "list", false, "list available algorithms and exit")
			return flags
		},
		Run: func(args []string) error {
			if list {
				for _, algorithm := range digest.Algorithms() {
					fmt.Println(algorithm)
				}
				return nil
			}

			algorithm, err := digest.ParseAlgorithm(algorithmName)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			data, err := readInput(cfg, hexLiteral, textLiteral, args)
			if err != nil {
				return err
			}

			sum, err := digest.Sum(context.Background(), algorithm, data)
			if err != nil {
				return err
			}
			fmt.Println(byteutil.BytesToHex(sum))
			return nil
		},
	}
}
