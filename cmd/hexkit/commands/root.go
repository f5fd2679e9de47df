// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands defines the hexkit CLI command tree. Every data
// transform the toolkit offers is reachable here: hex dumps, digests,
// UUID generation, Base64, and CBOR inspection.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/hexkit-project/hexkit/cmd/hexkit/cli"
	"github.com/hexkit-project/hexkit/lib/byteutil"
	"github.com/hexkit-project/hexkit/lib/config"
	"github.com/hexkit-project/hexkit/lib/digest/extra"
	"github.com/hexkit-project/hexkit/lib/theme"
	"github.com/hexkit-project/hexkit/lib/version"
)

// Root builds the hexkit command tree. The non-core digest
// algorithms are registered here so every subcommand sees the full
// algorithm table.
func Root() *cli.Command {
	extra.RegisterAll()

	return &cli.Command{
		Name:    "hexkit",
		Summary: "binary data inspection and transform toolkit",
		Description: "hexkit inspects and transforms binary data: hex dumps with\n" +
			"truncation and ASCII panes, message digests, RFC 4122 UUIDs,\n" +
			"Base64, and CBOR diagnostic decoding.",
		Subcommands: []*cli.Command{
			hexCommand(),
			hashCommand(),
			uuidCommand(),
			base64Command(),
			cborCommand(),
			versionCommand(),
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "print version information",
		Run: func(args []string) error {
			fmt.Println(version.Full())
			return nil
		},
	}
}

// loadConfig reads HEXKIT_CONFIG or an explicit --config path.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// readInput resolves a command's input bytes with this precedence:
// --hex literal, --text literal, positional file path, stdin. File
// paths go through the size-capped loader; stdin is read whole.
func readInput(cfg *config.Config, hexLiteral, textLiteral string, args []string) ([]byte, error) {
	switch {
	case hexLiteral != "":
		return byteutil.HexToBytes(hexLiteral)
	case textLiteral != "":
		return byteutil.TextToBytes(textLiteral), nil
	case len(args) > 0:
		view, err := cfg.Loader().Load(context.Background(), args[0])
		if err != nil {
			return nil, err
		}
		return view.ByteSlice(), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
}

// stdoutIsTerminal gates colored output: pipes and redirects get
// plain text.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// resolveTheme loads the persisted preference and resolves it against
// the detected terminal background.
func resolveTheme(cfg *config.Config) theme.Theme {
	store, err := cfg.ThemeStore()
	if err != nil {
		return theme.DetectSystem()
	}
	preference, err := store.Load()
	if err != nil {
		preference = theme.FollowSystem
	}
	return theme.Resolve(preference, theme.DetectSystem())
}
