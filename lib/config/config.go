// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for hexkit binaries.
//
// Configuration is loaded from a single YAML file specified by:
//   - HEXKIT_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery; running without a
// config file uses [Default] values. This keeps behavior
// deterministic with no hidden overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hexkit-project/hexkit/lib/fileload"
	"github.com/hexkit-project/hexkit/lib/hexview"
	"github.com/hexkit-project/hexkit/lib/theme"
)

// Config is the master configuration for hexkit.
type Config struct {
	// HexView configures the hex renderer defaults.
	HexView HexViewConfig `yaml:"hexview"`

	// File configures the file-read collaborator.
	File FileConfig `yaml:"file"`

	// Theme configures appearance resolution.
	Theme ThemeConfig `yaml:"theme"`
}

// HexViewConfig mirrors hexview.Config.
type HexViewConfig struct {
	// BytesPerRow is the number of bytes per hex row.
	BytesPerRow int `yaml:"bytes_per_row"`

	// MaxRows caps rendered rows; excess bytes are reported as omitted.
	MaxRows int `yaml:"max_rows"`

	// ShowASCII enables the ASCII pane.
	ShowASCII bool `yaml:"show_ascii"`
}

// FileConfig bounds file input.
type FileConfig struct {
	// MaxSizeBytes caps loadable file size. Inputs past the cap are
	// rejected with a size-exceeded message before reaching the core.
	MaxSizeBytes int64 `yaml:"max_size_bytes"`

	// Decompress enables transparent gzip decompression.
	Decompress bool `yaml:"decompress"`
}

// ThemeConfig configures appearance.
type ThemeConfig struct {
	// PreferencePath overrides where the theme preference is
	// persisted. Empty means the user config directory.
	PreferencePath string `yaml:"preference_path"`
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		HexView: HexViewConfig{
			BytesPerRow: hexview.DefaultBytesPerRow,
			MaxRows:     hexview.DefaultMaxRows,
			ShowASCII:   true,
		},
		File: FileConfig{
			MaxSizeBytes: fileload.DefaultMaxSize,
		},
	}
}

// Load reads the config file named by HEXKIT_CONFIG, or returns
// [Default] when the variable is unset.
func Load() (*Config, error) {
	path := os.Getenv("HEXKIT_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a config file over [Default] values, so absent keys
// keep their defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// RenderConfig converts to the hexview package's config type.
func (c *Config) RenderConfig() hexview.Config {
	return hexview.Config{
		BytesPerRow: c.HexView.BytesPerRow,
		MaxRows:     c.HexView.MaxRows,
		ShowASCII:   c.HexView.ShowASCII,
	}
}

// Loader builds the file loader from the file section.
func (c *Config) Loader() fileload.Loader {
	return fileload.Loader{
		MaxSize:    c.File.MaxSizeBytes,
		Decompress: c.File.Decompress,
	}
}

// ThemeStore builds the persistence port for the theme preference.
func (c *Config) ThemeStore() (theme.Store, error) {
	path := c.Theme.PreferencePath
	if path == "" {
		defaultPath, err := theme.DefaultStorePath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	return &theme.FileStore{Path: path}, nil
}
