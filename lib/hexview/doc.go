// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package hexview projects a byte buffer into an offset/hex/ASCII
// tabular view with truncation and a byte-index highlight contract.
//
// [Render] is pure: it produces a [View] describing rows, cells, and
// truncation, and presenters decide how to draw it. The View exposes
// a stable position identity for every displayed byte via
// [View.Position] and [View.Index], so a presenter can correlate a
// hover over the hex pane with the same byte in the ASCII pane (and
// back) without re-deriving the layout.
//
// An empty buffer is a valid terminal display state, not an error:
// the View has zero rows and [View.Empty] reports true.
//
// [Format] is the in-repo terminal presenter, rendering the classic
// hexdump layout with lipgloss styles and an optional single-byte
// highlight.
package hexview
