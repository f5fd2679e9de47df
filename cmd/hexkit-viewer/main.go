// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

// hexkit-viewer is the interactive TUI for inspecting binary data:
// a scrollable hex dump with hover-synced byte highlighting, a
// persisted light/dark theme toggle, and a tabbed pane of usage
// examples.
//
// Input comes from a file argument, a --hex literal, or stdin. Files
// go through the size-capped loader, so oversized input is rejected
// with a readable message instead of exhausting memory.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/hexkit-project/hexkit/lib/byteutil"
	"github.com/hexkit-project/hexkit/lib/config"
	"github.com/hexkit-project/hexkit/lib/hexui"
	"github.com/hexkit-project/hexkit/lib/theme"
	"github.com/hexkit-project/hexkit/lib/version"
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
	var configPath string
	var hexLiteral string
	var logOutput string

	flagSet := pflag.NewFlagSet("hexkit-viewer", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to hexkit.yaml (default: $HEXKIT_CONFIG)")
	flagSet.StringVar(&hexLiteral, "hex", "", "input as a hex string instead of a file")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match the hexkit binary.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("hexkit-viewer")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if logOutput != "" {
		logFile, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log output %s: %w", logOutput, err)
		}
		defer logFile.Close()
		slog.SetDefault(slog.New(slog.NewJSONHandler(logFile, nil)))
	} else {
		// The TUI owns the terminal; discard log records by default.
		slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	data, fileName, err := readInput(cfg, hexLiteral, flagSet.Args())
	if err != nil {
		return err
	}

	store, err := cfg.ThemeStore()
	if err != nil {
		slog.Warn("theme store unavailable, using session-only theme", "error", err)
		store = nil
	}
	initial := theme.DetectSystem()
	if store != nil {
		preference, err := store.Load()
		if err == nil {
			initial = theme.Resolve(preference, initial)
		}
	}

	model := hexui.New(data, fileName, cfg.RenderConfig(), initial, store)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	slog.Info("viewer starting", "file", fileName, "bytes", data.Len(), "theme", initial)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// readInput resolves the viewer's input buffer: --hex literal or a
// file argument. Stdin is not an input source here — the terminal
// belongs to the TUI.
func readInput(cfg *config.Config, hexLiteral string, args []string) (byteutil.ByteView, string, error) {
	if hexLiteral != "" {
		data, err := byteutil.HexToBytes(hexLiteral)
		if err != nil {
			return byteutil.ByteView{}, "", err
		}
		return byteutil.NewByteView(data), "", nil
	}
	if len(args) > 0 {
		view, err := cfg.Loader().Load(context.Background(), args[0])
		if err != nil {
			return byteutil.ByteView{}, "", err
		}
		return view, args[0], nil
	}
	return byteutil.ByteView{}, "", fmt.Errorf("a file argument or --hex literal is required")
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `hexkit-viewer — interactive hex dump viewer

Usage:
  hexkit-viewer [file] [flags]

Keys:
  q          quit
  t          toggle light/dark theme (persisted)
  tab        switch between the hex view and the example pane
  ←/→        move the byte highlight (or switch examples)
  esc        clear the highlight
  mouse      hovering a byte highlights it in both panes

Flags:
%s`, flagSet.FlagUsages())
}
