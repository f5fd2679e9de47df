// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/hexkit-project/hexkit/cmd/hexkit/cli"
	"github.com/hexkit-project/hexkit/lib/hexview"
	"github.com/hexkit-project/hexkit/lib/theme"
)

func hexCommand() *cli.Command {
	var configPath string
	var hexLiteral string
	var textLiteral string
	var bytesPerRow int
	var maxRows int
	var noASCII bool
	var highlight int
	var plain bool

	return &cli.Command{
		Name:    "hex",
		Summary: "render bytes as an offset/hex/ASCII dump",
		Usage:   "hexkit hex [file] [flags]",
		Examples: []cli.Example{
			{Description: "dump a file", Command: "hexkit hex firmware.bin"},
			{Description: "dump piped data, 8 bytes per row", Command: "cat blob | hexkit hex --bytes-per-row 8"},
			{Description: "dump a hex literal with one byte highlighted", Command: "hexkit hex --hex deadbeef --highlight 2"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("hex", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to hexkit.yaml (default: $HEXKIT_CONFIG)")
			flags.StringVar(&hexLiteral, "hex", "", "input as a hex string instead of a file")
			flags.StringVar(&textLiteral, "text", "", "input as literal text instead of a file")
			flags.IntVar(&bytesPerRow, "bytes-per-row", 0, "bytes per row (default from config, 16)")
			flags.IntVar(&maxRows, "max-rows", 0, "row cap before truncation (default from config, 100)")
			flags.BoolVar(&noASCII, "no-ascii", false, "omit the ASCII pane")
			flags.IntVar(&highlight, "highlight", hexview.NoHighlight, "byte index to highlight")
			flags.BoolVar(&plain, "plain", false, "disable colored output")
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

			renderConfig := cfg.RenderConfig()
			if bytesPerRow > 0 {
				renderConfig.BytesPerRow = bytesPerRow
			}
			if maxRows > 0 {
				renderConfig.MaxRows = maxRows
			}
			if noASCII {
				renderConfig.ShowASCII = false
			}

			view := hexview.Render(data, renderConfig)

			style := hexview.Style{}
			if !plain && stdoutIsTerminal() {
				style = theme.Colors(resolveTheme(cfg)).HexStyle()
			}
			fmt.Print(hexview.Format(view, style, highlight))
			return nil
		},
	}
}
