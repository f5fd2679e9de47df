// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package hexui is the interactive hex viewer: a bubbletea model
// rendering a scrollable offset/hex/ASCII dump with hover-synced byte
// highlighting, a light/dark theme toggle persisted through the theme
// store, and a tabbed pane of syntax-highlighted usage examples.
//
// Highlight synchronization is built entirely on the hexview position
// contract: mouse coordinates are mapped to a byte index via the
// layout metrics in hittest.go, and the same index drives the styled
// cell in both the hex and ASCII panes. Moving the cursor off either
// pane clears the highlight.
package hexui
