// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package theme resolves the light/dark appearance of hexkit's
// presentation surfaces and defines their color palettes.
//
// Theme selection is explicit data flow, not global state: the
// presentation root resolves a [Theme] once at startup from the
// persisted [Preference] and the detected system appearance, and
// passes it down. Persistence goes through the [Store] port so tests
// and alternative frontends can supply their own backing.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/hexkit-project/hexkit/lib/hexview"
)

// Theme is a resolved appearance.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Preference is the persisted user choice. FollowSystem defers to the
// terminal's detected background.
type Preference string

const (
	PreferLight  Preference = "light"
	PreferDark   Preference = "dark"
	FollowSystem Preference = "system"
)

// Store is the persistence port for the theme preference — the only
// piece of state this toolkit keeps between runs.
type Store interface {
	// Load returns the saved preference, or FollowSystem if none
	// has been saved yet.
	Load() (Preference, error)

	// Save persists the preference.
	Save(Preference) error
}

// Resolve decides the effective theme. An explicit light/dark
// preference wins; FollowSystem (or anything unrecognized) falls back
// to the system appearance. Pure function.
func Resolve(preference Preference, system Theme) Theme {
	switch preference {
	case PreferLight:
		return Light
	case PreferDark:
		return Dark
	default:
		return system
	}
}

// Toggle returns the other theme.
func Toggle(current Theme) Theme {
	if current == Dark {
		return Light
	}
	return Dark
}

// DetectSystem inspects the terminal background. Terminals that
// cannot be queried report dark, the safer default for hexdump
// color contrast.
func DetectSystem() Theme {
	if termenv.HasDarkBackground() {
		return Dark
	}
	return Light
}

// FileStore persists the preference as a single-line file. The zero
// preference state is an absent file.
type FileStore struct {
	// Path is the preference file location.
	Path string
}

// DefaultStorePath places the preference under the user config
// directory (~/.config/hexkit/theme on Linux).
func DefaultStorePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(configDir, "hexkit", "theme"), nil
}

// Load implements [Store]. A missing file is FollowSystem, not an
// error; an unrecognized value is also FollowSystem so a corrupt
// preference file degrades gracefully.
func (s *FileStore) Load() (Preference, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return FollowSystem, nil
	}
	if err != nil {
		return FollowSystem, fmt.Errorf("reading theme preference: %w", err)
	}
	switch preference := Preference(strings.TrimSpace(string(data))); preference {
	case PreferLight, PreferDark, FollowSystem:
		return preference, nil
	default:
		return FollowSystem, nil
	}
}

// Save implements [Store].
func (s *FileStore) Save(preference Preference) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("creating theme preference directory: %w", err)
	}
	if err := os.WriteFile(s.Path, []byte(string(preference)+"\n"), 0644); err != nil {
		return fmt.Errorf("writing theme preference: %w", err)
	}
	return nil
}

// Palette is the color set for one theme. All colors are lipgloss
// ANSI 256-color codes for broad terminal compatibility.
type Palette struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Hex view columns.
	Offset       lipgloss.Color
	HexDigits    lipgloss.Color
	Printable    lipgloss.Color
	NonPrintable lipgloss.Color

	// Single-byte hover highlight.
	HighlightForeground lipgloss.Color
	HighlightBackground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	TabActive        lipgloss.Color
	TabInactive      lipgloss.Color
}

var palettes = map[Theme]Palette{
	Dark: {
		NormalText:          lipgloss.Color("252"),
		FaintText:           lipgloss.Color("241"),
		Offset:              lipgloss.Color("244"),
		HexDigits:           lipgloss.Color("252"),
		Printable:           lipgloss.Color("114"),
		NonPrintable:        lipgloss.Color("238"),
		HighlightForeground: lipgloss.Color("231"),
		HighlightBackground: lipgloss.Color("31"),
		HeaderForeground:    lipgloss.Color("159"),
		BorderColor:         lipgloss.Color("240"),
		HelpText:            lipgloss.Color("241"),
		TabActive:           lipgloss.Color("159"),
		TabInactive:         lipgloss.Color("244"),
	},
	Light: {
		NormalText:          lipgloss.Color("235"),
		FaintText:           lipgloss.Color("245"),
		Offset:              lipgloss.Color("243"),
		HexDigits:           lipgloss.Color("235"),
		Printable:           lipgloss.Color("28"),
		NonPrintable:        lipgloss.Color("250"),
		HighlightForeground: lipgloss.Color("231"),
		HighlightBackground: lipgloss.Color("25"),
		HeaderForeground:    lipgloss.Color("25"),
		BorderColor:         lipgloss.Color("250"),
		HelpText:            lipgloss.Color("245"),
		TabActive:           lipgloss.Color("25"),
		TabInactive:         lipgloss.Color("245"),
	},
}

// Colors returns the palette for a theme. Unknown themes get the
// dark palette.
func Colors(t Theme) Palette {
	if palette, ok := palettes[t]; ok {
		return palette
	}
	return palettes[Dark]
}

// HexStyle maps a palette onto the hex formatter's style set.
func (p Palette) HexStyle() hexview.Style {
	return hexview.Style{
		Offset:       lipgloss.NewStyle().Foreground(p.Offset),
		Hex:          lipgloss.NewStyle().Foreground(p.HexDigits),
		Printable:    lipgloss.NewStyle().Foreground(p.Printable),
		NonPrintable: lipgloss.NewStyle().Foreground(p.NonPrintable),
		Highlight: lipgloss.NewStyle().
			Foreground(p.HighlightForeground).
			Background(p.HighlightBackground).
			Bold(true),
		Marker: lipgloss.NewStyle().Foreground(p.FaintText).Italic(true),
	}
}
